package dashboard

import "github.com/Madhav-Gupta-28/0xmart-admin-go/models"

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeWarning NoticeKind = "warning"
)

// Notice is a user-visible message shown after an action.
type Notice struct {
	Kind  NoticeKind `json:"kind"`
	Title string     `json:"title"`
	Text  string     `json:"text"`
}

var (
	NoticeDeleted      = Notice{Kind: NoticeSuccess, Title: "Deleted!", Text: "Your order has been deleted."}
	NoticeDeleteFailed = Notice{Kind: NoticeError, Title: "Error!", Text: "Something went wrong while deleting."}
	NoticeStatusFailed = Notice{Kind: NoticeError, Title: "Error!", Text: "Something went wrong while updating the status."}
	NoticeLoadFailed   = Notice{Kind: NoticeWarning, Title: "Could not load orders", Text: "Showing the last known orders. Reload to try again."}
	NoticeBadLogin     = Notice{Kind: NoticeWarning, Title: "Login failed", Text: "Invalid email or password"}
)

// StatusNotice returns the success notice for a status change, or nil when
// the target status has none.
func StatusNotice(status models.OrderStatus) *Notice {
	switch status {
	case models.OrderStatusDispatch:
		return &Notice{Kind: NoticeSuccess, Title: "Dispatch", Text: "The order is now dispatched."}
	case models.OrderStatusSuccess:
		return &Notice{Kind: NoticeSuccess, Title: "Success", Text: "The order has been completed."}
	}
	return nil
}
