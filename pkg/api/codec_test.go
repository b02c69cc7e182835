package api

import (
	"testing"

	"github.com/matryer/is"
	"github.com/pquerna/ffjson/ffjson"
)

func TestCodec(t *testing.T) {
	is := is.New(t)
	var c Codec

	is.Equal(c.Name(), "json")

	data, err := c.Marshal(&JoinGroupRequest{Code: "GOA25X", DisplayName: "Ravi"})
	is.NoErr(err)
	is.Equal(string(data), `{"code":"GOA25X","display_name":"Ravi"}`) // pin omitted when empty

	var req AddExpenseRequest
	is.NoErr(c.Unmarshal([]byte(`{"group_id":"g1","amount":"900.50","participant_ids":["a","b"],"weights":[1,2]}`), &req))
	is.Equal(req.GroupID, "g1")
	is.Equal(req.Amount, "900.50")
	is.Equal(len(req.ParticipantIDs), 2)
	is.Equal(req.Weights[1], int64(2))

	var empty RemoveMemberResponse
	is.NoErr(c.Unmarshal(nil, &empty))

	is.True(c.Unmarshal([]byte(`{"group_id":`), &req) != nil) // truncated body
}

func TestFastPaths(t *testing.T) {
	is := is.New(t)

	resp := &GetSettlementResponse{
		Transfers: []*Transfer{{FromID: "c", FromName: "Chen", ToID: "a", ToName: "Asha \"A\"", Amount: 35000, Formatted: "₹350.00"}},
	}
	data, err := ffjson.MarshalFast(resp)
	is.NoErr(err)
	is.Equal(string(data), `{"transfers":[{"from_id":"c","from_name":"Chen","to_id":"a","to_name":"Asha \"A\"","amount":35000,"formatted":"₹350.00"}],"all_settled":false}`)

	var back GetSettlementResponse
	is.NoErr(ffjson.UnmarshalFast(data, &back))
	is.Equal(len(back.Transfers), 1)
	is.Equal(*back.Transfers[0], *resp.Transfers[0])

	data, err = ffjson.MarshalFast(&GetBalancesResponse{Balances: []*Balance{{MemberID: "b", Net: -25000, Status: "owes"}}})
	is.NoErr(err)
	is.Equal(string(data), `{"balances":[{"member_id":"b","display_name":"","paid":0,"owed":0,"net":-25000,"status":"owes","formatted":""}]}`)

	data, err = ffjson.MarshalFast(&ListMembersResponse{})
	is.NoErr(err)
	is.Equal(string(data), `{"members":null}`)

	var join JoinGroupResponse
	is.NoErr(ffjson.UnmarshalFast([]byte(`{"group":{"id":"g1","has_pin":true,"extra":{"x":[1,{"y":null}]}},"member":null,"token":"t"}`), &join))
	is.Equal(join.Group.ID, "g1")
	is.True(join.Group.HasPIN)
	is.True(join.Member == nil)
	is.Equal(join.Token, "t")

	var expenses ListExpensesResponse
	is.NoErr(ffjson.UnmarshalFast([]byte(` {"expenses":[{"id":"e1","amount":90050,"splits":[{"member_id":"a","amount":45025},{"member_id":"b","amount":45025}]}]} `), &expenses))
	is.Equal(expenses.Expenses[0].Amount, int64(90050))
	is.Equal(len(expenses.Expenses[0].Splits), 2)
	is.Equal(expenses.Expenses[0].Splits[1].MemberID, "b")

	var req AddExpenseRequest
	is.True(ffjson.UnmarshalFast([]byte(`{"amount":900.5}`), &req) != nil)     // amount travels as a string
	is.True(ffjson.UnmarshalFast([]byte(`{"weights":[1.5]}`), &req) != nil)    // weights are integers
	is.True(ffjson.UnmarshalFast([]byte(`{"group_id":"g1"} {}`), &req) != nil) // trailing data
	is.True(ffjson.UnmarshalFast([]byte(`{"group_id" "g1"}`), &req) != nil)    // missing colon
	is.True(ffjson.UnmarshalFast([]byte(`["g1"]`), &req) != nil)               // not an object
}
