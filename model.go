package sylva

import (
	"encoding/json"
	"fmt"
)

// Model kind tags used by the envelope codec.
const (
	KindID3     = "id3"
	KindC45     = "c45"
	KindBagging = "bagging"
	KindForest  = "forest"
)

type modelEnvelope struct {
	Kind  string          `json:"kind"`
	Model json.RawMessage `json:"model"`
}

/*
EncodeModel serializes a trained classifier into a self-describing
JSON envelope, suitable for writing to a file or a model store. The
inverse is DecodeModel.
*/
func EncodeModel(c Classifier) ([]byte, error) {
	var kind string
	switch c.(type) {
	case *ID3:
		kind = KindID3
	case *C45:
		kind = KindC45
	case *Bagging:
		kind = KindBagging
	case *RandomForest:
		kind = KindForest
	default:
		return nil, fmt.Errorf("encoding model: unknown classifier type %T", c)
	}
	model, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding %s model: %v", kind, err)
	}
	return json.Marshal(modelEnvelope{Kind: kind, Model: model})
}

/*
DecodeModel parses a JSON envelope produced by EncodeModel and returns
the classifier it holds, ready to predict.
*/
func DecodeModel(data []byte) (Classifier, error) {
	var env modelEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding model envelope: %v", err)
	}
	var c Classifier
	switch env.Kind {
	case KindID3:
		c = &ID3{}
	case KindC45:
		c = &C45{}
	case KindBagging:
		c = &Bagging{}
	case KindForest:
		c = &RandomForest{}
	default:
		return nil, fmt.Errorf("decoding model: unknown kind %q", env.Kind)
	}
	if err := json.Unmarshal(env.Model, c); err != nil {
		return nil, fmt.Errorf("decoding %s model: %v", env.Kind, err)
	}
	return c, nil
}
