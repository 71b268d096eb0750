package responses

// useKitKey is the result data key holding a client kit command.
const useKitKey = "use_kit"

// Result is the machine-readable part of a response, delivered to the
// device alongside the spoken text.
type Result struct {
	Data              map[string]any `json:"data"`
	Local             bool           `json:"local"`
	TargetDeviceID    string         `json:"targetDeviceId,omitempty"`
	DelayedClientTask *ClientTask    `json:"delayedClientTask,omitempty"`
}

// NewResult creates an empty local result.
func NewResult() Result {
	return Result{Data: map[string]any{}, Local: true}
}

// IsEmpty reports whether the result carries no payload and can be omitted
// from the wire response.
func (r Result) IsEmpty() bool {
	return len(r.Data) == 0 && r.TargetDeviceID == "" && r.DelayedClientTask == nil
}
