package api

import (
	fflib "github.com/pquerna/ffjson/fflib/v1"
)

// MarshalJSONBuf marshal buff to json
func (j *Share) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"member_id":`)
	fflib.WriteJsonString(buf, j.MemberID)
	buf.WriteString(`,"amount":`)
	writeInt(buf, j.Amount)
	buf.WriteString(`,"formatted":`)
	fflib.WriteJsonString(buf, j.Formatted)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *Share) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *Share) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "member_id":
			return readString(fs, tok, &j.MemberID)
		case "amount":
			return readInt(fs, tok, &j.Amount)
		case "formatted":
			return readString(fs, tok, &j.Formatted)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *Expense) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"id":`)
	fflib.WriteJsonString(buf, j.ID)
	buf.WriteString(`,"group_id":`)
	fflib.WriteJsonString(buf, j.GroupID)
	buf.WriteString(`,"payer_id":`)
	fflib.WriteJsonString(buf, j.PayerID)
	buf.WriteString(`,"payer_name":`)
	fflib.WriteJsonString(buf, j.PayerName)
	buf.WriteString(`,"description":`)
	fflib.WriteJsonString(buf, j.Description)
	buf.WriteString(`,"amount":`)
	writeInt(buf, j.Amount)
	buf.WriteString(`,"formatted":`)
	fflib.WriteJsonString(buf, j.Formatted)
	buf.WriteString(`,"split_kind":`)
	fflib.WriteJsonString(buf, j.SplitKind)
	buf.WriteString(`,"date":`)
	fflib.WriteJsonString(buf, j.Date)
	buf.WriteString(`,"created_at":`)
	writeInt(buf, j.CreatedAt)
	buf.WriteString(`,"splits":`)
	if err := writeList(buf, j.Splits); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *Expense) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *Expense) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "id":
			return readString(fs, tok, &j.ID)
		case "group_id":
			return readString(fs, tok, &j.GroupID)
		case "payer_id":
			return readString(fs, tok, &j.PayerID)
		case "payer_name":
			return readString(fs, tok, &j.PayerName)
		case "description":
			return readString(fs, tok, &j.Description)
		case "amount":
			return readInt(fs, tok, &j.Amount)
		case "formatted":
			return readString(fs, tok, &j.Formatted)
		case "split_kind":
			return readString(fs, tok, &j.SplitKind)
		case "date":
			return readString(fs, tok, &j.Date)
		case "created_at":
			return readInt(fs, tok, &j.CreatedAt)
		case "splits":
			return readMessages(fs, tok, &j.Splits)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *PreviewSplitRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"group_id":`)
	fflib.WriteJsonString(buf, j.GroupID)
	buf.WriteString(`,"amount":`)
	fflib.WriteJsonString(buf, j.Amount)
	buf.WriteString(`,"split_kind":`)
	fflib.WriteJsonString(buf, j.SplitKind)
	buf.WriteString(`,"participant_ids":`)
	writeStrings(buf, j.ParticipantIDs)
	if len(j.Weights) != 0 {
		buf.WriteString(`,"weights":`)
		writeInts(buf, j.Weights)
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *PreviewSplitRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *PreviewSplitRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "group_id":
			return readString(fs, tok, &j.GroupID)
		case "amount":
			return readString(fs, tok, &j.Amount)
		case "split_kind":
			return readString(fs, tok, &j.SplitKind)
		case "participant_ids":
			return readStrings(fs, tok, &j.ParticipantIDs)
		case "weights":
			return readInts(fs, tok, &j.Weights)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *PreviewSplitResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"amount":`)
	writeInt(buf, j.Amount)
	buf.WriteString(`,"shares":`)
	if err := writeList(buf, j.Shares); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *PreviewSplitResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *PreviewSplitResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "amount":
			return readInt(fs, tok, &j.Amount)
		case "shares":
			return readMessages(fs, tok, &j.Shares)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *AddExpenseRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"group_id":`)
	fflib.WriteJsonString(buf, j.GroupID)
	buf.WriteString(`,"payer_id":`)
	fflib.WriteJsonString(buf, j.PayerID)
	buf.WriteString(`,"description":`)
	fflib.WriteJsonString(buf, j.Description)
	buf.WriteString(`,"amount":`)
	fflib.WriteJsonString(buf, j.Amount)
	if j.Date != "" {
		buf.WriteString(`,"date":`)
		fflib.WriteJsonString(buf, j.Date)
	}
	buf.WriteString(`,"split_kind":`)
	fflib.WriteJsonString(buf, j.SplitKind)
	buf.WriteString(`,"participant_ids":`)
	writeStrings(buf, j.ParticipantIDs)
	if len(j.Weights) != 0 {
		buf.WriteString(`,"weights":`)
		writeInts(buf, j.Weights)
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *AddExpenseRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *AddExpenseRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "group_id":
			return readString(fs, tok, &j.GroupID)
		case "payer_id":
			return readString(fs, tok, &j.PayerID)
		case "description":
			return readString(fs, tok, &j.Description)
		case "amount":
			return readString(fs, tok, &j.Amount)
		case "date":
			return readString(fs, tok, &j.Date)
		case "split_kind":
			return readString(fs, tok, &j.SplitKind)
		case "participant_ids":
			return readStrings(fs, tok, &j.ParticipantIDs)
		case "weights":
			return readInts(fs, tok, &j.Weights)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *AddExpenseResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"expense":`)
	if err := j.Expense.MarshalJSONBuf(buf); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *AddExpenseResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *AddExpenseResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "expense" {
			return readMessage(fs, tok, &j.Expense)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *ListExpensesRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
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
func (j *ListExpensesRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *ListExpensesRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "group_id" {
			return readString(fs, tok, &j.GroupID)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *ListExpensesResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"expenses":`)
	if err := writeList(buf, j.Expenses); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *ListExpensesResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *ListExpensesResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "expenses" {
			return readMessages(fs, tok, &j.Expenses)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *DeleteExpenseRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"expense_id":`)
	fflib.WriteJsonString(buf, j.ExpenseID)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *DeleteExpenseRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *DeleteExpenseRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "expense_id" {
			return readString(fs, tok, &j.ExpenseID)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *DeleteExpenseResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{}`)
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *DeleteExpenseResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *DeleteExpenseResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *Balance) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"member_id":`)
	fflib.WriteJsonString(buf, j.MemberID)
	buf.WriteString(`,"display_name":`)
	fflib.WriteJsonString(buf, j.DisplayName)
	buf.WriteString(`,"paid":`)
	writeInt(buf, j.Paid)
	buf.WriteString(`,"owed":`)
	writeInt(buf, j.Owed)
	buf.WriteString(`,"net":`)
	writeInt(buf, j.Net)
	buf.WriteString(`,"status":`)
	fflib.WriteJsonString(buf, j.Status)
	buf.WriteString(`,"formatted":`)
	fflib.WriteJsonString(buf, j.Formatted)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *Balance) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *Balance) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "member_id":
			return readString(fs, tok, &j.MemberID)
		case "display_name":
			return readString(fs, tok, &j.DisplayName)
		case "paid":
			return readInt(fs, tok, &j.Paid)
		case "owed":
			return readInt(fs, tok, &j.Owed)
		case "net":
			return readInt(fs, tok, &j.Net)
		case "status":
			return readString(fs, tok, &j.Status)
		case "formatted":
			return readString(fs, tok, &j.Formatted)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *GetBalancesRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
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
func (j *GetBalancesRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *GetBalancesRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "group_id" {
			return readString(fs, tok, &j.GroupID)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *GetBalancesResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"balances":`)
	if err := writeList(buf, j.Balances); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *GetBalancesResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *GetBalancesResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "balances" {
			return readMessages(fs, tok, &j.Balances)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *Transfer) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"from_id":`)
	fflib.WriteJsonString(buf, j.FromID)
	buf.WriteString(`,"from_name":`)
	fflib.WriteJsonString(buf, j.FromName)
	buf.WriteString(`,"to_id":`)
	fflib.WriteJsonString(buf, j.ToID)
	buf.WriteString(`,"to_name":`)
	fflib.WriteJsonString(buf, j.ToName)
	buf.WriteString(`,"amount":`)
	writeInt(buf, j.Amount)
	buf.WriteString(`,"formatted":`)
	fflib.WriteJsonString(buf, j.Formatted)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *Transfer) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *Transfer) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "from_id":
			return readString(fs, tok, &j.FromID)
		case "from_name":
			return readString(fs, tok, &j.FromName)
		case "to_id":
			return readString(fs, tok, &j.ToID)
		case "to_name":
			return readString(fs, tok, &j.ToName)
		case "amount":
			return readInt(fs, tok, &j.Amount)
		case "formatted":
			return readString(fs, tok, &j.Formatted)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *GetSettlementRequest) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
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
func (j *GetSettlementRequest) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *GetSettlementRequest) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		if key == "group_id" {
			return readString(fs, tok, &j.GroupID)
		}
		return fs.SkipField(tok)
	})
}

// MarshalJSONBuf marshal buff to json
func (j *GetSettlementResponse) MarshalJSONBuf(buf fflib.EncodingBuffer) error {
	if j == nil {
		buf.WriteString("null")
		return nil
	}
	buf.WriteString(`{"transfers":`)
	if err := writeList(buf, j.Transfers); err != nil {
		return err
	}
	buf.WriteString(`,"all_settled":`)
	writeBool(buf, j.AllSettled)
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSONFFLexer fast json unmarshall
func (j *GetSettlementResponse) UnmarshalJSONFFLexer(fs *fflib.FFLexer, state fflib.FFParseState) error {
	return decodeTop(fs, state, j)
}

func (j *GetSettlementResponse) decodeFF(fs *fflib.FFLexer, tok fflib.FFTok) error {
	return readObject(fs, tok, func(key string, tok fflib.FFTok) error {
		switch key {
		case "transfers":
			return readMessages(fs, tok, &j.Transfers)
		case "all_settled":
			return readBool(fs, tok, &j.AllSettled)
		}
		return fs.SkipField(tok)
	})
}
