package session

import "github.com/tsegaye25/portfolio-api/internal/store"

// Credential is one record of the demo credential directory stored
// under the validUsers key.  Passwords are plaintext here on
// purpose: this table only ever backs the demo login flow, never
// the database-backed API accounts.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// adminEmail is the record the directory is never allowed to lose;
// losing it would lock the owner out of the dashboard.
const adminEmail = "admin@portfolio.com"

// seedCredentials are the bootstrap records written on first access.
func seedCredentials() []Credential {
	return []Credential{
		{Email: "tsegaye.kebede@example.com", Password: "password123", Name: "Tsegaye Kebede"},
		{Email: adminEmail, Password: "admin123", Name: "Admin User"},
		// kept for backward compatibility with older installs
		{Email: "admin@example.com", Password: "password123", Name: "Admin Example"},
	}
}

// CredentialDirectory wraps the validUsers collection.  Every
// mutation rewrites the whole list.
type CredentialDirectory struct {
	col *store.Collection[Credential]
}

func NewCredentialDirectory(s store.Store) *CredentialDirectory {
	return &CredentialDirectory{
		col: store.NewCollection[Credential](s, store.KeyValidUsers, func(c Credential) string { return c.Email }),
	}
}

// Load returns the directory contents, seeding the bootstrap
// records when the directory is empty and re-inserting the admin
// record if it has gone missing.
func (d *CredentialDirectory) Load() []Credential {
	users := d.col.ReadAll()
	if len(users) == 0 {
		users = seedCredentials()
		_ = d.col.WriteAll(users)
		return users
	}
	for _, u := range users {
		if u.Email == adminEmail {
			return users
		}
	}
	users = append(users, Credential{Email: adminEmail, Password: "admin123", Name: "Admin User"})
	_ = d.col.WriteAll(users)
	return users
}

// FindByEmail looks a record up in the (seeded) directory.
func (d *CredentialDirectory) FindByEmail(email string) (Credential, bool) {
	for _, u := range d.Load() {
		if u.Email == email {
			return u, true
		}
	}
	return Credential{}, false
}

// Upsert updates the record matched by prevEmail, or inserts the
// given record when no match exists.  An empty password on update
// keeps the stored one.
func (d *CredentialDirectory) Upsert(prevEmail string, rec Credential) error {
	users := d.Load()
	for i, u := range users {
		if u.Email == prevEmail {
			if rec.Email != "" {
				users[i].Email = rec.Email
			}
			if rec.Name != "" {
				users[i].Name = rec.Name
			}
			if rec.Password != "" {
				users[i].Password = rec.Password
			}
			return d.col.WriteAll(users)
		}
	}
	if rec.Password == "" {
		rec.Password = "password123" // default for records inserted without one
	}
	return d.col.WriteAll(append(users, rec))
}
