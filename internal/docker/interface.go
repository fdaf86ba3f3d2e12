// internal/docker/interface.go
package docker

import (
	"github.com/rusenback/vessel/internal/cgroup"
	"github.com/rusenback/vessel/internal/model"
)

// DockerClient interface mahdollistaa mockauksen testeissä
type DockerClient interface {
	ListContainers() ([]model.Container, error)
	RunningContainerNames() ([]string, error)
	Resolve(nameOrID string) string
	Close() error
}

// Varmista että Client toteuttaa interfacet
var (
	_ DockerClient    = (*Client)(nil)
	_ cgroup.Resolver = (*Client)(nil)
)
