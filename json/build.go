package json

import (
	"fmt"
	"sort"
	"strconv"
)

// FromGo converts a generic Go value — as produced by decoders such as
// gopkg.in/yaml.v3 or goccy/go-yaml's Unmarshal into `any` — into a
// Value tree. This is the transcoding step the CLI's YAML loaders use
// before handing a document to Compile or Parse; it is not used on the
// JSON text path, which goes through Parse instead.
//
// map[string]any keys are sorted for determinism, since YAML does not
// preserve source order the way our JSON tokenizer does.
func FromGo(in any) (Value, error) {
	switch t := in.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case int:
		return Num(strconv.Itoa(t)), nil
	case int64:
		return Num(strconv.FormatInt(t, 10)), nil
	case float64:
		return Num(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			v, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Arr(items), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			v, err := FromGo(t[k])
			if err != nil {
				return Value{}, err
			}
			obj.Set(k, v)
		}
		return Obj(obj), nil
	case map[any]any:
		// gopkg.in/yaml.v3 produces map[string]interface{} for string
		// keys already; this branch covers non-string-keyed YAML maps.
		converted := make(map[string]any, len(t))
		for k, v := range t {
			converted[fmt.Sprint(k)] = v
		}
		return FromGo(converted)
	default:
		return Value{}, fmt.Errorf("json: cannot convert %T to a Value", in)
	}
}
