package matching

import "github.com/heartmarshall/reuse-backend/internal/domain"

// DetectReciprocity looks for a like that closes the pair opened by newLike.
// candidates are the likes targeting newLike.SourceItemID. A candidate
// qualifies when it was placed by targetOwnerID, offers newLike's target and
// asks for newLike's source. The earliest qualifying like wins.
//
// DetectReciprocity performs no I/O.
func DetectReciprocity(newLike *domain.Like, targetOwnerID string, candidates []*domain.Like) (domain.ReciprocalPair, bool) {
	var best *domain.Like
	for _, c := range candidates {
		if c.LikingUserID != targetOwnerID ||
			c.SourceItemID != newLike.TargetItemID ||
			c.TargetItemID != newLike.SourceItemID {
			continue
		}
		if best == nil || c.Before(best) {
			best = c
		}
	}
	if best == nil {
		return domain.ReciprocalPair{}, false
	}
	return domain.ReciprocalPair{Like: newLike, Reciprocal: best}, true
}
