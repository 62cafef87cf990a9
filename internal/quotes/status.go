package quotes

type Status string

const (
	StatusPending     Status = "Pending"
	StatusNegotiating Status = "Negotiating"
	StatusAccepted    Status = "Accepted"
	StatusRejected    Status = "Rejected"
)

var validNext = map[Status]map[Status]bool{
	StatusPending:     {StatusNegotiating: true, StatusAccepted: true, StatusRejected: true},
	StatusNegotiating: {StatusNegotiating: true, StatusAccepted: true, StatusRejected: true},
	StatusAccepted:    {},
	StatusRejected:    {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}
