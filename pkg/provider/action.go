package provider

import "fmt"

// Action identifies one of the four resource operations. It is a closed set:
// the selector string from the command line is validated into an Action
// before any request processing starts.
type Action int

const (
	// ActionCreate allocates a new resource in the temporary area.
	ActionCreate Action = iota
	// ActionRead returns the current contents of a resource.
	ActionRead
	// ActionUpdate overwrites a resource with new contents.
	ActionUpdate
	// ActionDelete removes a resource.
	ActionDelete
)

// String returns the selector name of the action.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionRead:
		return "read"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ParseAction maps a selector string to its Action. The selector is the
// dispatch key, so unlike the request payload it is validated strictly.
func ParseAction(s string) (Action, error) {
	switch s {
	case "create":
		return ActionCreate, nil
	case "read":
		return ActionRead, nil
	case "update":
		return ActionUpdate, nil
	case "delete":
		return ActionDelete, nil
	default:
		return 0, fmt.Errorf("unknown action %q (expected create, read, update or delete)", s)
	}
}
