package sqlite

import "github.com/mesh-intelligence/questions/pkg/types"

// Compile-time interface check: usersTable must implement UserTable.
var _ types.UserTable = (*usersTable)(nil)

// usersTable reads the users table.
type usersTable struct {
	backend *Backend
}

// FindByID returns the user with the given id, or nil if there is none.
func (ut *usersTable) FindByID(id types.UserID) (*types.User, error) {
	return findOne(ut.backend, types.TableUsers, "find_by_id", types.UserFromRow,
		"SELECT * FROM users WHERE id = ?", int64(id))
}

// FindByName returns the lowest-id user matching both names, or nil.
func (ut *usersTable) FindByName(first, last string) (*types.User, error) {
	return findOne(ut.backend, types.TableUsers, "find_by_name", types.UserFromRow,
		"SELECT * FROM users WHERE fname = ? AND lname = ? ORDER BY id LIMIT 1", first, last)
}

// All returns every user.
func (ut *usersTable) All() ([]types.User, error) {
	return findMany(ut.backend, types.TableUsers, "all", types.UserFromRow,
		"SELECT * FROM users")
}
