package types

import "errors"

// Store gives access to the finder tables of one open database.
// The sqlite Backend implements it; records take a Store in their
// relationship methods instead of reaching for a global connection.
type Store interface {
	Users() UserTable
	Questions() QuestionTable
	Replies() ReplyTable
	QuestionFollows() QuestionFollowTable
	QuestionLikes() QuestionLikeTable
}

// UserTable finds rows in the users table.
type UserTable interface {
	// FindByID returns nil, nil when no user has the id.
	FindByID(id UserID) (*User, error)

	// FindByName returns the first user whose first and last name both
	// match, or nil, nil when none does.
	FindByName(first, last string) (*User, error)

	// All returns every user.
	All() ([]User, error)
}

// QuestionTable finds rows in the questions table.
type QuestionTable interface {
	FindByID(id QuestionID) (*Question, error)
	FindByAuthorID(author UserID) ([]Question, error)
	All() ([]Question, error)
}

// ReplyTable finds rows in the replies table.
type ReplyTable interface {
	FindByID(id ReplyID) (*Reply, error)
	FindByUserID(user UserID) ([]Reply, error)
	FindByQuestionID(question QuestionID) ([]Reply, error)

	// ChildReplies returns the replies whose parent is the given reply.
	ChildReplies(parent ReplyID) ([]Reply, error)
}

// QuestionFollowTable finds rows in question_follows and traverses the
// follower relationship in both directions.
type QuestionFollowTable interface {
	FindByID(id FollowID) (*QuestionFollow, error)
	All() ([]QuestionFollow, error)
	FollowersForQuestionID(question QuestionID) ([]User, error)
	FollowedQuestionsForUserID(user UserID) ([]Question, error)

	// MostFollowedQuestions returns at most n questions ordered by
	// descending follower count, ties broken by ascending question id.
	MostFollowedQuestions(n int) ([]Question, error)
}

// QuestionLikeTable finds rows in question_likes.
type QuestionLikeTable interface {
	FindByID(id LikeID) (*QuestionLike, error)
}

// Table names in the external schema.
const (
	TableUsers           = "users"
	TableQuestions       = "questions"
	TableReplies         = "replies"
	TableQuestionFollows = "question_follows"
	TableQuestionLikes   = "question_likes"
)

// StandardTableNames lists all table names for enumeration.
var StandardTableNames = []string{
	TableUsers,
	TableQuestions,
	TableReplies,
	TableQuestionFollows,
	TableQuestionLikes,
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrStoreNotFound   = errors.New("store file not found")
)
