package usersnapshot

// Snapshot is a read-only view of identity-service data. It is fetched per
// request and never stored by this service.
type Snapshot struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	BaseSalary float64 `json:"baseSalary"`
}
