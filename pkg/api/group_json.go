package api

import (
	fflib "github.com/pquerna/ffjson/fflib/v1"
)

// MarshalJSONBuf marshal buff to json
func (j *Group) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"id":`)
	fflib.WriteJsonString(buf, j.ID)
	buf.WriteString(`,"code":`)
	fflib.WriteJsonString(buf, j.Code)
	buf.WriteString(`,"name":`)
	fflib.WriteJsonString(buf, j.Name)
	buf.WriteString(`,"has_pin":`)
	writeBool(buf, j.HasPIN)
	buf.WriteString(`,"created_at":`)
	writeInt(buf, j.CreatedAt)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *Group) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *Group) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "id":
			return readString(fs, tok, &j.ID)
		case "code":
			return readString(fs, tok, &j.Code)
		case "name":
			return readString(fs, tok, &j.Name)
		case "has_pin":
			return readBool(fs, tok, &j.HasPIN)
		case "created_at":
			return readInt(fs, tok, &j.CreatedAt)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *Member) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"id":`)
	fflib.WriteJsonString(buf, j.ID)
	buf.WriteString(`,"group_id":`)
	fflib.WriteJsonString(buf, j.GroupID)
	buf.WriteString(`,"display_name":`)
	fflib.WriteJsonString(buf, j.DisplayName)
	buf.WriteString(`,"created_at":`)
	writeInt(buf, j.CreatedAt)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *Member) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *Member) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "id":
			return readString(fs, tok, &j.ID)
		case "group_id":
			return readString(fs, tok, &j.GroupID)
		case "display_name":
			return readString(fs, tok, &j.DisplayName)
		case "created_at":
			return readInt(fs, tok, &j.CreatedAt)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *CreateGroupRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"name":`)
	fflib.WriteJsonString(buf, j.Name)
	if j.PIN != "" {
		buf.WriteString(`,"pin":`)
		fflib.WriteJsonString(buf, j.PIN)
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *CreateGroupRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *CreateGroupRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "name":
			return readString(fs, tok, &j.Name)
		case "pin":
			return readString(fs, tok, &j.PIN)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *CreateGroupResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"group":`)
	if err := j.Group.MarshalJSONBuf(buf); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *CreateGroupResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *CreateGroupResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "group" {
			return readMessage(fs, tok, &j.Group)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *GetGroupRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"code":`)
	fflib.WriteJsonString(buf, j.Code)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *GetGroupRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *GetGroupRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "code" {
			return readString(fs, tok, &j.Code)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *GetGroupResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"group":`)
	if err := j.Group.MarshalJSONBuf(buf); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *GetGroupResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *GetGroupResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "group" {
			return readMessage(fs, tok, &j.Group)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *JoinGroupRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"code":`)
	fflib.WriteJsonString(buf, j.Code)
	if j.PIN != "" {
		buf.WriteString(`,"pin":`)
		fflib.WriteJsonString(buf, j.PIN)
	}
	buf.WriteString(`,"display_name":`)
	fflib.WriteJsonString(buf, j.DisplayName)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *JoinGroupRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *JoinGroupRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "code":
			return readString(fs, tok, &j.Code)
		case "pin":
			return readString(fs, tok, &j.PIN)
		case "display_name":
			return readString(fs, tok, &j.DisplayName)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *JoinGroupResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"group":`)
	if err := j.Group.MarshalJSONBuf(buf); err != nil {
		return err
	}
	buf.WriteString(`,"member":`)
	if err := j.Member.MarshalJSONBuf(buf); err != nil {
		return err
	}
	buf.WriteString(`,"token":`)
	fflib.WriteJsonString(buf, j.Token)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *JoinGroupResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *JoinGroupResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "group":
			return readMessage(fs, tok, &j.Group)
		case "member":
			return readMessage(fs, tok, &j.Member)
		case "token":
			return readString(fs, tok, &j.Token)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *ListMembersRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"group_id":`)
	fflib.WriteJsonString(buf, j.GroupID)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *ListMembersRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *ListMembersRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "group_id" {
			return readString(fs, tok, &j.GroupID)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *ListMembersResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"members":`)
	if err := writeList(buf, j.Members); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *ListMembersResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *ListMembersResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "members" {
			return readMessages(fs, tok, &j.Members)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *RemoveMemberRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"member_id":`)
	fflib.WriteJsonString(buf, j.MemberID)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *RemoveMemberRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *RemoveMemberRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "member_id" {
			return readString(fs, tok, &j.MemberID)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *RemoveMemberResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{}`)
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *RemoveMemberResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *RemoveMemberResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		return fs.SkipField(tok)
	})
}
