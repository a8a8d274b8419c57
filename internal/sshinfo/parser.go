// Package sshinfo turns free-form SSH destination strings into
// ConnectionRecords.
package sshinfo

import (
	"regexp"
	"strings"

	"github.com/treykane/genssh/internal/model"
	"github.com/treykane/genssh/internal/util"
)

// destPattern finds a user@host token followed by a port. The separator is a
// colon, whitespace, or a -p flag. The port must end the token so that
// "[::1]:22" is not cut at the first colon.
var destPattern = regexp.MustCompile(`(\S+?)(?:\s+-p\s*|[\s:]+)(\d+)(?:\s|$)`)

// flagFirstPattern covers ssh's own ordering, "-p 22 user@host".
var flagFirstPattern = regexp.MustCompile(`(?:^|\s)-p\s*(\d+)\s+(\S+)`)

// Parse extracts user, host and port from raw. Accepted shapes include
// "user@host:22", "user@host -p 22", "user@host -p22",
// "ssh user@host -p 22" and "ssh -p 22 user@host".
func Parse(raw string) (model.ConnectionRecord, error) {
	userHost, portStr, ok := findDestination(raw)
	if !ok {
		return model.ConnectionRecord{}, formatErr(raw, ErrNoMatch, "")
	}

	user, host, err := splitUserHost(raw, userHost)
	if err != nil {
		return model.ConnectionRecord{}, err
	}
	port, err := util.ParsePort(portStr)
	if err != nil {
		return model.ConnectionRecord{}, formatErr(raw, ErrInvalidPort, err.Error())
	}

	return model.ConnectionRecord{
		Host: host,
		Port: port,
		User: user,
		Pass: model.MaskedPassword,
	}, nil
}

// findDestination prefers the first match whose token carries a user, then
// the flag-first form, and only then reports the first match without one.
func findDestination(raw string) (userHost, port string, ok bool) {
	matches := destPattern.FindAllStringSubmatch(raw, -1)
	for _, m := range matches {
		if strings.Contains(m[1], "@") {
			return m[1], m[2], true
		}
	}
	if m := flagFirstPattern.FindStringSubmatch(raw); m != nil && strings.Contains(m[2], "@") {
		return m[2], m[1], true
	}
	if len(matches) > 0 {
		return matches[0][1], matches[0][2], true
	}
	return "", "", false
}

func splitUserHost(raw, userHost string) (string, string, error) {
	switch strings.Count(userHost, "@") {
	case 0:
		return "", "", formatErr(raw, ErrMissingUserSeparator, "")
	case 1:
	default:
		return "", "", formatErr(raw, ErrMultipleUserSeparators, "")
	}
	user, host, _ := strings.Cut(userHost, "@")
	if user == "" {
		return "", "", formatErr(raw, ErrEmptyUser, "")
	}
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	} else if strings.Contains(host, ":") {
		// An unbracketed colon means a second port-like segment, as in "u@h:22:33".
		return "", "", formatErr(raw, ErrInvalidHost, "unexpected ':' in host "+host)
	}
	if host == "" {
		return "", "", formatErr(raw, ErrEmptyHost, "")
	}
	return user, host, nil
}

// Template returns the placeholder record used when no input is given.
func Template() model.ConnectionRecord {
	return model.ConnectionRecord{
		Host: "example.com",
		Port: util.DefaultSSHPort,
		User: "username",
		Pass: model.MaskedPassword,
	}
}
