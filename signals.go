package lounge

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for lounge events.
var (
	SignalEncoderCreated = capitan.NewSignal("lounge.encoder.created", "Encoder instantiated")
	SignalEncodeStart    = capitan.NewSignal("lounge.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("lounge.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("lounge.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("lounge.decode.complete", "Decode operation finished")
	SignalDetectorBound  = capitan.NewSignal("lounge.detector.bound", "Document detector bound")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyDetector    = capitan.NewStringKey("detector")
)

// emitEncoderCreated emits an event when an encoder is created.
func emitEncoderCreated(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalEncoderCreated,
		KeyContentType.Field(contentType),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitDetectorBound emits an event when the document detector is bound,
// either lazily to the default or by injection.
func emitDetectorBound(ctx context.Context, lazy bool) {
	name := "injected"
	if lazy {
		name = "default"
	}
	capitan.Emit(ctx, SignalDetectorBound,
		KeyDetector.Field(name),
	)
}
