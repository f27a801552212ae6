package services

import "encoding/json"

// DegradedReason tells why an analysis fell back to the offline payload.
type DegradedReason string

const (
	ReasonNone              DegradedReason = ""
	ReasonMissingCredential DegradedReason = "missing_credential"
	ReasonQuotaExceeded     DegradedReason = "quota_exceeded"
	ReasonEmptyResponse     DegradedReason = "empty_response"
	ReasonInvalidJSON       DegradedReason = "invalid_json"
	ReasonProviderError     DegradedReason = "provider_error"
	ReasonInternalError     DegradedReason = "internal_error"
)

// AnalysisOutcome is either a success carrying the provider's JSON object, or
// a degraded result carrying the reason. The body of a degraded outcome is
// always the fallback payload.
type AnalysisOutcome struct {
	Payload json.RawMessage
	Reason  DegradedReason
}

func SuccessOutcome(payload json.RawMessage) AnalysisOutcome {
	return AnalysisOutcome{Payload: payload}
}

func DegradedOutcome(reason DegradedReason) AnalysisOutcome {
	return AnalysisOutcome{Reason: reason}
}

func (o AnalysisOutcome) Degraded() bool {
	return o.Reason != ReasonNone
}

// Body is what the endpoint serializes.
func (o AnalysisOutcome) Body() any {
	if o.Degraded() || len(o.Payload) == 0 {
		return FallbackResult()
	}
	return o.Payload
}
