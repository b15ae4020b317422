package service

// RouteKey names the admin page a mutation returns to.
type RouteKey string

const (
	RouteTransactionsIndex    RouteKey = "transactions.index"
	RouteTransactionsTrash    RouteKey = "transactions.trash"
	RouteTravelGalleriesIndex RouteKey = "travel-galleries.index"
)

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashFailed  FlashKind = "failed"
)

type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Outcome is what every mutating operation hands back to the caller.
type Outcome struct {
	Destination RouteKey `json:"destination"`
	Flash       Flash    `json:"flash"`
}

func newOutcome(destination RouteKey, result Result) Outcome {
	kind := FlashSuccess
	if !result.OK {
		kind = FlashFailed
	}
	return Outcome{Destination: destination, Flash: Flash{Kind: kind, Message: result.Message}}
}

func (o Outcome) OK() bool {
	return o.Flash.Kind == FlashSuccess
}
