package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Song is kept exactly as its writer stored it. Clients read keys such as
// id, title, artist, mp3_url, thumbnail_url and duration, but none is required
// and their types are not fixed.
type Song map[string]any

func (s Song) Text(key string) string {
	v, _ := s[key].(string)
	return v
}

// UnmarshalBSON decodes into JSON-friendly Go values: ObjectIDs become hex
// strings, dates become time.Time and nested documents become maps.
func (s *Song) UnmarshalBSON(data []byte) error {
	m, err := rawToMap(bson.Raw(data))
	if err != nil {
		return err
	}
	*s = Song(m)
	return nil
}

func rawToMap(doc bson.Raw) (map[string]any, error) {
	elems, err := doc.Elements()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(elems))
	for _, e := range elems {
		v, err := rawValue(e.Value())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key(), err)
		}
		out[e.Key()] = v
	}
	return out, nil
}

func rawValue(rv bson.RawValue) (any, error) {
	switch rv.Type {
	case bson.TypeString:
		return rv.StringValue(), nil
	case bson.TypeInt32:
		return rv.Int32(), nil
	case bson.TypeInt64:
		return rv.Int64(), nil
	case bson.TypeDouble:
		return rv.Double(), nil
	case bson.TypeBoolean:
		return rv.Boolean(), nil
	case bson.TypeNull, bson.TypeUndefined:
		return nil, nil
	case bson.TypeObjectID:
		return rv.ObjectID().Hex(), nil
	case bson.TypeDateTime:
		return time.UnixMilli(rv.DateTime()).UTC(), nil
	case bson.TypeEmbeddedDocument:
		return rawToMap(rv.Document())
	case bson.TypeArray:
		vals, err := rv.Array().Values()
		if err != nil {
			return nil, err
		}
		arr := make([]any, 0, len(vals))
		for _, item := range vals {
			v, err := rawValue(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case bson.TypeDecimal128:
		return rv.Decimal128().String(), nil
	default:
		return rv.String(), nil
	}
}
