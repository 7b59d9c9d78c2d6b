package models

// DocketStatus is the lifecycle state of a docket.
type DocketStatus string

const (
	StatusCreated    DocketStatus = "Created"
	StatusDispatched DocketStatus = "Dispatched"
	StatusInTransit  DocketStatus = "In Transit"
	StatusArrived    DocketStatus = "Arrived at Destination"
	StatusDelivered  DocketStatus = "Delivered"
	StatusCancelled  DocketStatus = "Cancelled"
	StatusReturned   DocketStatus = "Returned"
)

// AllStatuses lists every recognised docket status.
var AllStatuses = []DocketStatus{
	StatusCreated,
	StatusDispatched,
	StatusInTransit,
	StatusArrived,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
}

func (s DocketStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s DocketStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// forwardNext maps each non-terminal status to its next step on the delivery path.
var forwardNext = map[DocketStatus]DocketStatus{
	StatusCreated:    StatusDispatched,
	StatusDispatched: StatusInTransit,
	StatusInTransit:  StatusArrived,
	StatusArrived:    StatusDelivered,
}

// NextForward returns the next status on the forward delivery path, if any.
func (s DocketStatus) NextForward() (DocketStatus, bool) {
	next, ok := forwardNext[s]
	return next, ok
}

// CanReturnFrom reports whether a docket may be marked Returned from s.
func CanReturnFrom(s DocketStatus) bool {
	return s == StatusInTransit || s == StatusArrived
}

// PaymentType describes how the docket total is to be collected.
type PaymentType string

const (
	PaymentPaid  PaymentType = "Paid"
	PaymentToPay PaymentType = "To Pay"
	PaymentTBB   PaymentType = "TBB"
)

func (p PaymentType) IsValid() bool {
	return p == PaymentPaid || p == PaymentToPay || p == PaymentTBB
}
