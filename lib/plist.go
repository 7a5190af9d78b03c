// seehuhn.de/go/ufo - a library for reading and writing UFO font sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lib

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"time"

	"howett.net/plist"
)

// ErrNotDict is returned when a property list file does not contain a
// dictionary at the top level.
var ErrNotDict = errors.New("property list is not a dictionary")

// FromPlist converts a value decoded by the property list package into an
// [Object].  Dictionary keys are sorted, since the decoded maps carry no
// order.
func FromPlist(v any) (Object, error) {
	switch v := v.(type) {
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case []byte:
		return Data(v), nil
	case time.Time:
		return Date(v), nil
	case float32:
		return Real(v), nil
	case float64:
		return Real(v), nil
	case int:
		return Integer(v), nil
	case int8:
		return Integer(v), nil
	case int16:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case uint8:
		return Integer(v), nil
	case uint16:
		return Integer(v), nil
	case uint32:
		return Integer(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d out of range", v)
		}
		return Integer(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d out of range", v)
		}
		return Integer(v), nil
	case []any:
		res := make(Array, len(v))
		for i, elem := range v {
			obj, err := FromPlist(elem)
			if err != nil {
				return nil, err
			}
			res[i] = obj
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		res := NewDict()
		for _, key := range keys {
			obj, err := FromPlist(v[key])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			res.Set(key, obj)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported property list type %s", reflect.TypeOf(v))
	}
}

// Parse decodes a property list.
func Parse(data []byte) (Object, error) {
	var raw any
	_, err := plist.Unmarshal(data, &raw)
	if err != nil {
		return nil, err
	}
	return FromPlist(raw)
}

// ParseDict decodes a property list whose top-level object is a dictionary.
func ParseDict(data []byte) (*Dict, error) {
	obj, err := Parse(data)
	if err != nil {
		return nil, err
	}
	d, ok := obj.(*Dict)
	if !ok {
		return nil, ErrNotDict
	}
	return d, nil
}

// ReadDict reads a property list whose top-level object is a dictionary.
func ReadDict(r io.Reader) (*Dict, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseDict(data)
}

// MarshalXML encodes obj as an XML property list.
func MarshalXML(obj Object) ([]byte, error) {
	var v any
	if obj == nil {
		v = map[string]any{}
	} else {
		v = obj.AsPlist()
	}
	buf := &bytes.Buffer{}
	enc := plist.NewEncoderForFormat(buf, plist.XMLFormat)
	enc.Indent("\t")
	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteDict writes d as an XML property list.
func WriteDict(w io.Writer, d *Dict) error {
	if d == nil {
		d = NewDict()
	}
	data, err := MarshalXML(d)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
