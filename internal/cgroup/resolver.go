// internal/cgroup/resolver.go
package cgroup

import (
	"os/exec"
	"strings"
)

// Resolver selvittää containerin täyden ID:n nimestä tai lyhyestä ID:stä.
// Resolve ei koskaan epäonnistu: jos ID:tä ei saada selville, palautetaan
// syöte sellaisenaan (caller on voinut antaa valmiin ID:n).
type Resolver interface {
	Resolve(nameOrID string) string
}

// ExecResolver kysyy ID:n docker inspect komennolla
type ExecResolver struct{}

func (ExecResolver) Resolve(nameOrID string) string {
	out, err := exec.Command("docker", "inspect", "--format", "{{.Id}}", nameOrID).Output()
	if err != nil {
		// docker puuttuu tai container tuntematon - oletetaan että
		// syöte on jo täysi ID
		return nameOrID
	}
	return strings.TrimSpace(string(out))
}
