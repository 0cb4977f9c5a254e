package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when the employee id is unknown, so a
// lookup miss costs the same as a wrong password.
const dummyHash = "$2a$12$K8Y1Vi0N0h6mFyqmUMkU0eYHkXf0kTq0S3KQe0dXxGm9cQeYFhyEW"

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value. bcrypt's
// comparison is constant time with respect to the password.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// BurnComparison performs a throwaway bcrypt comparison. Called on unknown
// employee ids so the failure timing matches a wrong-password failure.
func BurnComparison(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
}
