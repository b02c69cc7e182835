package api

import (
	"errors"
	"fmt"

	fflib "github.com/pquerna/ffjson/fflib/v1"
)

// The MarshalJSONBuf and UnmarshalJSONFFLexer methods in *_json.go are the
// ffjson fast paths; ffjson.Marshal and ffjson.Unmarshal pick them up instead
// of falling back to encoding/json. This file holds the pieces they share.

var errUnexpectedToken = errors.New("ffjson: unexpected token sequence")

func writeInt(buf fflib.EncodingBuffer, n int64) {
	fflib.FormatBits2(buf, uint64(n), 10, n < 0)
}

func writeBool(buf fflib.EncodingBuffer, b bool) {
	if b {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

func writeStrings(buf fflib.EncodingBuffer, list []string) {
	if list == nil {
		buf.WriteString("null")
		return
	}
	buf.WriteByte('[')
	for i, s := range list {
		if i > 0 {
			buf.WriteByte(',')
		}
		fflib.WriteJsonString(buf, s)
	}
	buf.WriteByte(']')
}

func writeInts(buf fflib.EncodingBuffer, list []int64) {
	if list == nil {
		buf.WriteString("null")
		return
	}
	buf.WriteByte('[')
	for i, n := range list {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeInt(buf, n)
	}
	buf.WriteByte(']')
}

// writeList writes a JSON array of messages; a nil slice is null.
func writeList[T interface {
	MarshalJSONBuf(fflib.EncodingBuffer) error
}](buf fflib.EncodingBuffer, list []T) error {
	if list == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteByte('[')
	for i, item := range list {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := item.MarshalJSONBuf(buf); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// tokenError turns an error or EOF token into an error.
func tokenError(fs *fflib.FFLexer, tok fflib.FFTok) error {
	switch tok {
	case fflib.FFTok_eof:
		return fs.WrapErr(errors.New("ffjson: unexpected EOF"))
	case fflib.FFTok_error:
		if fs.BigError != nil {
			return fs.WrapErr(fs.BigError)
		}
		if fs.Error != fflib.FFErr_e_ok {
			return fs.WrapErr(fs.Error.ToError())
		}
	}
	return fs.WrapErr(errUnexpectedToken)
}

// readObject walks the object that starts at tok, calling field with each key
// and the token of its value. field must consume the whole value. A null
// object is left untouched.
func readObject(fs *fflib.FFLexer, tok fflib.FFTok, field func(key string, tok fflib.FFTok) error) error {
	if tok == fflib.FFTok_null {
		return nil
	}
	if tok != fflib.FFTok_left_bracket {
		return tokenError(fs, tok)
	}

	for first := true; ; first = false {
		tok = fs.Scan()
		if first && tok == fflib.FFTok_right_bracket {
			return nil
		}
		if tok != fflib.FFTok_string {
			return tokenError(fs, tok)
		}
		key := string(fs.Output.Bytes())

		if tok = fs.Scan(); tok != fflib.FFTok_colon {
			return tokenError(fs, tok)
		}
		tok = fs.Scan()
		if tok == fflib.FFTok_eof || tok == fflib.FFTok_error {
			return tokenError(fs, tok)
		}
		if err := field(key, tok); err != nil {
			return err
		}

		switch tok = fs.Scan(); tok {
		case fflib.FFTok_comma:
		case fflib.FFTok_right_bracket:
			return nil
		default:
			return tokenError(fs, tok)
		}
	}
}

// readArray walks the array that starts at tok, calling elem with the token
// of each element. A null array calls nothing.
func readArray(fs *fflib.FFLexer, tok fflib.FFTok, elem func(tok fflib.FFTok) error) error {
	if tok == fflib.FFTok_null {
		return nil
	}
	if tok != fflib.FFTok_left_brace {
		return tokenError(fs, tok)
	}

	for first := true; ; first = false {
		tok = fs.Scan()
		if first && tok == fflib.FFTok_right_brace {
			return nil
		}
		if tok == fflib.FFTok_eof || tok == fflib.FFTok_error {
			return tokenError(fs, tok)
		}
		if err := elem(tok); err != nil {
			return err
		}

		switch tok = fs.Scan(); tok {
		case fflib.FFTok_comma:
		case fflib.FFTok_right_brace:
			return nil
		default:
			return tokenError(fs, tok)
		}
	}
}

// readString stores a string value in dst; null leaves dst unchanged.
func readString(fs *fflib.FFLexer, tok fflib.FFTok, dst *string) error {
	switch tok {
	case fflib.FFTok_null:
		return nil
	case fflib.FFTok_string:
		*dst = string(fs.Output.Bytes())
		return nil
	}
	return fs.WrapErr(fmt.Errorf("ffjson: wanted string, got %v", tok))
}

// readInt stores an integer value in dst; null leaves dst unchanged.
func readInt(fs *fflib.FFLexer, tok fflib.FFTok, dst *int64) error {
	switch tok {
	case fflib.FFTok_null:
		return nil
	case fflib.FFTok_integer:
		n, err := fflib.ParseInt(fs.Output.Bytes(), 10, 64)
		if err != nil {
			return fs.WrapErr(err)
		}
		*dst = n
		return nil
	}
	return fs.WrapErr(fmt.Errorf("ffjson: wanted integer, got %v", tok))
}

// readBool stores a boolean value in dst; null leaves dst unchanged.
func readBool(fs *fflib.FFLexer, tok fflib.FFTok, dst *bool) error {
	switch tok {
	case fflib.FFTok_null:
		return nil
	case fflib.FFTok_bool:
		out := fs.Output.Bytes()
		*dst = len(out) > 0 && out[0] == 't'
		return nil
	}
	return fs.WrapErr(fmt.Errorf("ffjson: wanted bool, got %v", tok))
}

func readStrings(fs *fflib.FFLexer, tok fflib.FFTok, dst *[]string) error {
	if tok == fflib.FFTok_null {
		*dst = nil
		return nil
	}
	list := []string{}
	err := readArray(fs, tok, func(tok fflib.FFTok) error {
		var s string
		if err := readString(fs, tok, &s); err != nil {
			return err
		}
		list = append(list, s)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = list
	return nil
}

func readInts(fs *fflib.FFLexer, tok fflib.FFTok, dst *[]int64) error {
	if tok == fflib.FFTok_null {
		*dst = nil
		return nil
	}
	list := []int64{}
	err := readArray(fs, tok, func(tok fflib.FFTok) error {
		var n int64
		if err := readInt(fs, tok, &n); err != nil {
			return err
		}
		list = append(list, n)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = list
	return nil
}

// decodable is a message with an ffjson decoder that starts at a value token.
type decodable interface {
	decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error
}

// readMessage decodes one message value into a freshly allocated T; null
// stores nil.
func readMessage[T any, P interface {
	*T
	decodable
}](fs *fflib.FFLexer, tok fflib.FFTok, dst *P) error {
	if tok == fflib.FFTok_null {
		*dst = nil
		return nil
	}
	msg := P(new(T))
	if err := msg.decodeFF(fs, tok); err != nil {
		return err
	}
	*dst = msg
	return nil
}

// readMessages decodes an array of messages.
func readMessages[T any, P interface {
	*T
	decodable
}](fs *fflib.FFLexer, tok fflib.FFTok, dst *[]P) error {
	if tok == fflib.FFTok_null {
		*dst = nil
		return nil
	}
	list := []P{}
	err := readArray(fs, tok, func(tok fflib.FFTok) error {
		var msg P
		if err := readMessage[T, P](fs, tok, &msg); err != nil {
			return err
		}
		list = append(list, msg)
		return nil
	})
	if err != nil {
		return err
	}
	*dst = list
	return nil
}

// decodeTop runs a message decoder from the start of the lexer input and
// rejects anything after the closing brace.
func decodeTop(fs *fflib.FFLexer, state fflib.FFParseState, msg decodable) error {
	if state != fflib.FFParse_map_start {
		return fs.WrapErr(fmt.Errorf("ffjson: unsupported parse state %v", state))
	}
	if err := msg.decodeFF(fs, fs.Scan()); err != nil {
		return err
	}
	if tok := fs.Scan(); tok != fflib.FFTok_eof {
		return tokenError(fs, tok)
	}
	return nil
}
