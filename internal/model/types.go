package model

// MaskedPassword is the only value ever written to ConnectionRecord.Pass.
const MaskedPassword = "****"

// ConnectionRecord is the SSH connection descriptor written to disk.
// Field order here is the key order of the JSON output.
type ConnectionRecord struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	User string `json:"user"`
	Pass string `json:"pass"`
}

// Destination returns the user@host form accepted by ssh.
func (r ConnectionRecord) Destination() string {
	if r.User == "" {
		return r.Host
	}
	return r.User + "@" + r.Host
}
