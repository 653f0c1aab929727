package controller

import "errors"

// Rule violations. These are expected, user-facing outcomes: the caller can
// always retry with different input, and none of them leaves a pool modified.
var (
	ErrWeekLocked             = errors.New("picks for this week are locked")
	ErrUnknownTeam            = errors.New("unknown team")
	ErrTeamNotPlayingThisWeek = errors.New("team is not playing this week")
	ErrTeamAlreadyUsed        = errors.New("team already used in this pool")
	ErrPoolFull               = errors.New("pool is full")
	ErrInvalidJoinKey         = errors.New("invalid join key")
	ErrNotBuybackVariant      = errors.New("pool does not allow buy-backs")
	ErrNotAMember             = errors.New("not a member of this pool")
	ErrNotEliminated          = errors.New("user is not eliminated")
	ErrBuybackCapReached      = errors.New("buy-back limit reached")

	ErrBadPassword = errors.New("incorrect password")
	ErrPoolInUse   = errors.New("pool has members or picks")
)
