package domain

// MaxBioLength caps the profile bio, matching the edit form limit.
const MaxBioLength = 160

// UserProfile is the singleton profile record.
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
}

// DefaultProfile returns the bootstrap profile used before the user edits
// anything, and the state restored by a profile reset.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:     "Matins Henry",
		Email:    "matins@example.com",
		Bio:      "Product designer & developer",
		Location: "San Francisco, CA",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=MH",
		Role:     "Premium User",
	}
}
