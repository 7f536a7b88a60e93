package model

// Indicator is the visual outcome of a health check shown to a user
type Indicator string

const (
	IndicatorSuccess Indicator = "success"
	IndicatorFailure Indicator = "failure"
)

// DisplayErrorText is shown in place of the status when the check fails
const DisplayErrorText = "Error"

// StatusDisplay is what a client renders for one health check attempt
type StatusDisplay struct {
	Text      string
	Indicator Indicator
}

// NewStatusDisplay maps the outcome of a single health check to its rendering.
// Any error, or a missing status, collapses into the failure display.
func NewStatusDisplay(status *HealthStatus, err error) StatusDisplay {
	if err != nil || status == nil {
		return StatusDisplay{Text: DisplayErrorText, Indicator: IndicatorFailure}
	}
	return StatusDisplay{Text: status.Status, Indicator: IndicatorSuccess}
}

// IsSuccess reports whether the display shows a live backend
func (d StatusDisplay) IsSuccess() bool {
	return d.Indicator == IndicatorSuccess
}
