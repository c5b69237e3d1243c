package codec

// Result is the outcome of encoding one input, shaped for reports.
type Result struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Input  string `json:"input" yaml:"input"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Value  uint64 `json:"value" yaml:"value"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Evaluate encodes input and captures the outcome as a Result.
func Evaluate(input string) Result {
	v, err := EncodeDetailed(input)
	if err != nil {
		return Result{Input: input, Reason: Reason(err), Detail: err.Error()}
	}
	return Result{Input: input, Valid: true, Value: v}
}

// Text renders r the way Format does.
func (r Result) Text(sentinel string) string {
	return Format(r.Value, r.Valid, sentinel)
}
