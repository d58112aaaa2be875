package models

// Result is the interpreted outcome of one request.
type Result int

const (
	Failure Result = iota
	Success
)

func (r Result) String() string {
	if r == Success {
		return "success"
	}
	return "failure"
}

// Outcome pairs the received status code with its interpretation.
// StatusCode is zero when no response was received.
type Outcome struct {
	StatusCode int
	Result     Result
}

func (o Outcome) OK() bool {
	return o.Result == Success
}
