package contract

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// encodeRecord renders a record for kv storage or a message body. Encoding
// a well-formed struct cannot fail, so errors here are programmer mistakes.
func encodeRecord(v tinyjson.Marshaler) string {
	w := jwriter.Writer{}
	v.MarshalTinyJSON(&w)
	data, err := w.BuildBytes()
	if err != nil {
		panic(err)
	}
	return string(data)
}

// decodeRecord parses data into out. Callers pass message bodies straight
// in, so a failure maps to the bad_payload rejection.
func decodeRecord(data string, out tinyjson.Unmarshaler) error {
	l := jlexer.Lexer{Data: []byte(data)}
	out.UnmarshalTinyJSON(&l)
	if err := l.Error(); err != nil {
		return rejectf("bad_payload", "decode: %v", err)
	}
	return nil
}
