package models

// VoteKind selects which vote set a toggle targets.
type VoteKind string

const (
	Upvote   VoteKind = "upvote"
	Downvote VoteKind = "downvote"
)

func remove(set []string, username string) []string {
	out := make([]string, 0, len(set))
	for _, u := range set {
		if u != username {
			out = append(out, u)
		}
	}
	return out
}

func contains(set []string, username string) bool {
	for _, u := range set {
		if u == username {
			return true
		}
	}
	return false
}

// ApplyVote runs one vote toggle: voting again cancels, voting the opposite
// way switches sides. The user never ends up in both sets. This is the
// in-process statement of the transition the storage layer applies in a
// single atomic pipeline update.
func ApplyVote(upVotes, downVotes []string, username string, kind VoteKind) (up, down []string) {
	target, opposite := upVotes, downVotes
	if kind == Downvote {
		target, opposite = downVotes, upVotes
	}

	opposite = remove(opposite, username)
	if contains(target, username) {
		target = remove(target, username)
	} else {
		target = append(remove(target, username), username)
	}

	if kind == Downvote {
		return opposite, target
	}
	return target, opposite
}
