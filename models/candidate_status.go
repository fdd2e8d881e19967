package models

type CandidateStatus string

// этапы воронки подбора, порядок как в трекере
const (
	StatusApplicationReceived CandidateStatus = "Application Received"
	StatusPhoneScreening      CandidateStatus = "Phone Screening"
	StatusL1Interview         CandidateStatus = "L1 Interview"
	StatusYetToShare          CandidateStatus = "Yet to Share"
	StatusL2Interview         CandidateStatus = "L2 Interview"
	StatusSharedWithClient    CandidateStatus = "Shared with Client"
	StatusFinalDiscussion     CandidateStatus = "Final Discussion"
	StatusOfferReleased       CandidateStatus = "Offer Released"
	StatusJoined              CandidateStatus = "Joined"
	StatusDeclinedOffer       CandidateStatus = "Declined Offer"
	StatusRejected            CandidateStatus = "Rejected"
	StatusWithdrawn           CandidateStatus = "Withdrawn"
	StatusNoShow              CandidateStatus = "No Show"
	StatusBuffer              CandidateStatus = "Buffer"
	StatusHold                CandidateStatus = "Hold"
)

var CandidateStatuses = []CandidateStatus{
	StatusApplicationReceived,
	StatusPhoneScreening,
	StatusL1Interview,
	StatusYetToShare,
	StatusL2Interview,
	StatusSharedWithClient,
	StatusFinalDiscussion,
	StatusOfferReleased,
	StatusJoined,
	StatusDeclinedOffer,
	StatusRejected,
	StatusWithdrawn,
	StatusNoShow,
	StatusBuffer,
	StatusHold,
}

// IsTerminal - статус из которого нет дальнейших переходов
func (s CandidateStatus) IsTerminal() bool {
	switch s {
	case StatusJoined, StatusDeclinedOffer, StatusRejected, StatusWithdrawn, StatusNoShow:
		return true
	}
	return false
}

// IsRejectedKind - терминальный статус с фиксацией в списке отказов.
// Joined тоже терминальный, но в отказы не попадает
func (s CandidateStatus) IsRejectedKind() bool {
	switch s {
	case StatusDeclinedOffer, StatusRejected, StatusWithdrawn, StatusNoShow:
		return true
	}
	return false
}

func (s CandidateStatus) IsValid() bool {
	for _, known := range CandidateStatuses {
		if s == known {
			return true
		}
	}
	return false
}
