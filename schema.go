package lounge

import (
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

// structPlan describes how a struct type clones into a plain object.
type structPlan struct {
	typeName string
	fields   []fieldPlan
}

// fieldPlan describes a single exported field.
type fieldPlan struct {
	index     []int  // reflect.Value.FieldByIndex access path
	key       string // object key, from the json tag or the field name
	omitEmpty bool   // json ",omitempty"
	ptrs      []int  // positions in index that step through a pointer
}

var (
	plans   = make(map[reflect.Type]*structPlan)
	plansMu sync.RWMutex

	// registered holds sentinel metadata by type. sentinel caches by bare
	// type name, so lookups go through the reflect.Type instead.
	registered = make(map[reflect.Type]sentinel.Metadata)
)

// Register scans T with sentinel so that later clones of T plan their
// fields from its metadata. T must be a struct type or a pointer to one.
// Registration is optional: unregistered structs are scanned by reflection
// on first use.
func Register[T any]() {
	rt := reflect.TypeFor[T]()
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	registerMetadata(rt, sentinel.Scan[T]())
}

// registerMetadata records meta for rt and drops any cached plan. Metadata
// sentinel filed for a same-named type of another package is ignored.
func registerMetadata(rt reflect.Type, meta sentinel.Metadata) {
	if meta.TypeName != rt.Name() || meta.PackageName != rt.PkgPath() {
		return
	}

	plansMu.Lock()
	defer plansMu.Unlock()
	registered[rt] = meta
	delete(plans, rt)
}

// planFor returns a cached plan for rt or builds one.
func planFor(rt reflect.Type) *structPlan {
	// Fast path: read-lock cache check
	plansMu.RLock()
	if p, ok := plans[rt]; ok {
		plansMu.RUnlock()
		return p
	}
	plansMu.RUnlock()

	// Slow path: build and cache with write-lock
	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if p, ok := plans[rt]; ok {
		return p
	}

	p := &structPlan{typeName: rt.Name()}
	if meta, ok := registered[rt]; ok {
		p.typeName = meta.TypeName
	}
	buildFieldPlans(p, rt, nil, nil, make(map[reflect.Type]bool))
	plans[rt] = p
	return p
}

// buildFieldPlans walks the fields of rt, flattening untagged embedded
// structs the way encoding/json does.
func buildFieldPlans(p *structPlan, rt reflect.Type, parentIndex, ptrs []int, seen map[reflect.Type]bool) {
	if seen[rt] {
		return
	}
	seen[rt] = true
	defer delete(seen, rt)

	for _, field := range scanFields(rt) {
		sf := rt.FieldByIndex(field.Index)
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)

		tag := field.Tags["json"]
		if tag == "-" {
			continue
		}
		key, opts, _ := strings.Cut(tag, ",")

		// Handle embedded structs
		if sf.Anonymous && key == "" {
			ft := sf.Type
			fieldPtrs := ptrs
			if ft.Kind() == reflect.Ptr {
				if !sf.IsExported() {
					continue
				}
				ft = ft.Elem()
				fieldPtrs = append(append([]int{}, ptrs...), len(fullIndex)-1)
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				buildFieldPlans(p, ft, fullIndex, fieldPtrs, seen)
				continue
			}
		}

		if !sf.IsExported() {
			continue
		}
		if key == "" {
			key = sf.Name
		}

		p.fields = append(p.fields, fieldPlan{
			index:     fullIndex,
			key:       key,
			omitEmpty: hasTagOption(opts, "omitempty"),
			ptrs:      ptrs,
		})
	}
}

// scanFields returns the field metadata for rt. Registered types use what
// sentinel recorded; sentinel skips unexported fields, so unexported
// embedded structs are added from reflection to keep them flattened.
// Called with plansMu held.
func scanFields(rt reflect.Type) []sentinel.FieldMetadata {
	meta, ok := registered[rt]
	if !ok {
		return reflectFields(rt, false)
	}
	fields := append([]sentinel.FieldMetadata{}, meta.Fields...)
	return append(fields, reflectFields(rt, true)...)
}

// reflectFields builds sentinel-shaped metadata by reflection. With
// embeddedOnly set, only unexported embedded fields are returned.
func reflectFields(rt reflect.Type, embeddedOnly bool) []sentinel.FieldMetadata {
	fields := make([]sentinel.FieldMetadata, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if embeddedOnly && (sf.IsExported() || !sf.Anonymous) {
			continue
		}
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}
		tags := make(map[string]string)
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tags["json"] = tag
		}
		fields = append(fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}
	return fields
}

func hasTagOption(opts, name string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == name {
			return true
		}
	}
	return false
}

// field navigates a field plan, reporting false when a pointer on the
// path is nil.
func (f fieldPlan) field(rv reflect.Value) (reflect.Value, bool) {
	if len(f.ptrs) == 0 {
		return rv.FieldByIndex(f.index), true
	}

	current := rv
	for i, idx := range f.index {
		current = current.Field(idx)
		if containsInt(f.ptrs, i) {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}
	return current, true
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
