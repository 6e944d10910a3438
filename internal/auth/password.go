package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor used for stored credentials.
// bcrypt.DefaultCost is 10, matching the cost the frontend and the
// seeded records were produced with.
const HashCost = bcrypt.DefaultCost

// HashPassword creates a salted bcrypt hash of the plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext password against a stored
// hash. A malformed hash fails closed: the function returns false and
// never surfaces an error into the authentication path.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
