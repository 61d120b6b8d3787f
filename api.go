// Package lounge provides the in-memory primitives shared by the lounge
// object-mapping layer: type predicates, a store-safe clone engine, a
// domain-object detector and a classifier for "key not found" store errors.
//
// # Clone
//
// Clone produces a plain copy of an arbitrary value built from map[string]any,
// []any and scalar leaves, suitable for handing to a codec before a write:
//
//	out, err := lounge.Clone(user, lounge.Options{Minimize: true})
//
// Options control the result:
//
//   - Minimize: drop absent values and collapse objects that end up empty to nil
//   - JSON: prefer a document's ToJSON over ToObject
//   - DateToISO: render time.Time as an ISO-8601 string
//   - Strict: report unsupported values (funcs, chans) as ErrUnsupported
//
// # Documents
//
// Values that implement Document take over their own conversion. The clone
// engine calls ToObject (or ToJSON) and does not recurse into the result:
//
//	func (u *User) ToObject(opts lounge.Options) (any, error) {
//	    return map[string]any{"id": u.ID, "email": u.Email}, nil
//	}
//
// The mapping layer may replace the default detector with SetDetector.
//
// # Store Errors
//
// IsKeyNotFound recognises the many shapes a "key not found" condition takes
// across store clients and protocol revisions:
//
//	if _, err := bucket.Get(ctx, key); lounge.IsKeyNotFound(err) {
//	    return nil, nil
//	}
//
// # Encoding
//
// An Encoder pairs the clone engine with a Codec. Codec implementations are
// available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package lounge

// Options configures Clone. The zero value performs a full, non-minimized
// clone that keeps dates as time.Time.
type Options struct {
	// Minimize omits absent values and collapses empty objects to nil.
	Minimize bool

	// JSON prefers JSONDocument.ToJSON over Document.ToObject.
	JSON bool

	// DateToISO renders dates as ISO-8601 strings.
	DateToISO bool

	// Strict reports unsupported values instead of dropping them.
	Strict bool
}

// Document is implemented by domain objects that convert themselves.
// The clone engine hands the conversion over entirely and does not
// recurse into the returned value.
type Document interface {
	// ToObject returns a plain representation of the receiver.
	ToObject(opts Options) (any, error)
}

// JSONDocument is an optional JSON-flavored conversion used when
// Options.JSON is set.
type JSONDocument interface {
	// ToJSON returns a JSON-ready representation of the receiver.
	ToJSON(opts Options) (any, error)
}
