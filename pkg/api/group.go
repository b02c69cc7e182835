// Package api defines the request and response messages of the splitlite RPC
// services. Messages travel as JSON through the connect codec in this package.
package api

// Group is the public view of a group. The PIN hash never leaves the server.
type Group struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	HasPIN    bool   `json:"has_pin"`
	CreatedAt int64  `json:"created_at"`
}

// Member is a person inside one group.
type Member struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin,omitempty"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	Code string `json:"code"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type JoinGroupRequest struct {
	Code        string `json:"code"`
	PIN         string `json:"pin,omitempty"`
	DisplayName string `json:"display_name"`
}

// JoinGroupResponse carries the bearer token for the new member's session.
type JoinGroupResponse struct {
	Group  *Group  `json:"group"`
	Member *Member `json:"member"`
	Token  string  `json:"token"`
}

type ListMembersRequest struct {
	GroupID string `json:"group_id"`
}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

type RemoveMemberRequest struct {
	MemberID string `json:"member_id"`
}

type RemoveMemberResponse struct{}
