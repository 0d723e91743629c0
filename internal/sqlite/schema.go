package sqlite

// Schema DDL for the five tables. The schema is normally provisioned outside
// this package; these statements only bootstrap a fresh file when
// Config.CreateSchema is set, and are no-ops against an existing schema.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    fname TEXT NOT NULL,
    lname TEXT NOT NULL
);`

	createQuestions = `CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    author INTEGER NOT NULL,
    FOREIGN KEY (author) REFERENCES users(id)
);`

	createReplies = `CREATE TABLE IF NOT EXISTS replies (
    id INTEGER PRIMARY KEY,
    question_id INTEGER NOT NULL,
    parent INTEGER,
    user_id INTEGER NOT NULL,
    body TEXT NOT NULL,
    FOREIGN KEY (question_id) REFERENCES questions(id),
    FOREIGN KEY (parent) REFERENCES replies(id),
    FOREIGN KEY (user_id) REFERENCES users(id)
);`

	createQuestionFollows = `CREATE TABLE IF NOT EXISTS question_follows (
    id INTEGER PRIMARY KEY,
    question_id INTEGER NOT NULL,
    follower INTEGER NOT NULL,
    FOREIGN KEY (question_id) REFERENCES questions(id),
    FOREIGN KEY (follower) REFERENCES users(id)
);`

	createQuestionLikes = `CREATE TABLE IF NOT EXISTS question_likes (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    question_id INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id),
    FOREIGN KEY (question_id) REFERENCES questions(id)
);`
)

// Index DDL for the finder filters.
const (
	idxQuestionsAuthor         = `CREATE INDEX IF NOT EXISTS idx_questions_author ON questions(author);`
	idxRepliesQuestion         = `CREATE INDEX IF NOT EXISTS idx_replies_question ON replies(question_id);`
	idxRepliesUser             = `CREATE INDEX IF NOT EXISTS idx_replies_user ON replies(user_id);`
	idxRepliesParent           = `CREATE INDEX IF NOT EXISTS idx_replies_parent ON replies(parent);`
	idxQuestionFollowsQuestion = `CREATE INDEX IF NOT EXISTS idx_question_follows_question ON question_follows(question_id);`
	idxQuestionFollowsFollower = `CREATE INDEX IF NOT EXISTS idx_question_follows_follower ON question_follows(follower);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createQuestions,
	createReplies,
	createQuestionFollows,
	createQuestionLikes,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxQuestionsAuthor,
	idxRepliesQuestion,
	idxRepliesUser,
	idxRepliesParent,
	idxQuestionFollowsQuestion,
	idxQuestionFollowsFollower,
}
