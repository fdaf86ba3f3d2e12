// internal/docker/container.go
package docker

import (
	"context"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/rusenback/vessel/internal/model"
)

// ListContainers palauttaa kaikki containerit (running + stopped)
func (c *Client) ListContainers() ([]model.Container, error) {
	containers, err := c.cli.ContainerList(c.ctx, container.ListOptions{
		All: true, // Näytä myös pysäytetyt
	})
	if err != nil {
		return nil, err
	}

	result := make([]model.Container, 0, len(containers))
	for _, cont := range containers {
		// Poista "/" container nimen alusta jos on
		name := cont.Names[0]
		if strings.HasPrefix(name, "/") {
			name = name[1:]
		}

		result = append(result, model.Container{
			ID:      cont.ID[:12], // Lyhyt ID
			Name:    name,
			Image:   cont.Image,
			Status:  cont.Status,
			State:   cont.State,
			Created: time.Unix(cont.Created, 0),
		})
	}

	return result, nil
}

// RunningContainerNames palauttaa käynnissä olevien containereiden nimet.
// Monitor --all käyttää tätä kun config ei listaa containereita.
func (c *Client) RunningContainerNames() ([]string, error) {
	containers, err := c.ListContainers()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(containers))
	for _, cont := range containers {
		if cont.State == "running" {
			names = append(names, cont.Name)
		}
	}

	return names, nil
}

// Resolve hakee containerin täyden ID:n Docker API:sta. Virheessä syöte
// palautuu sellaisenaan, samoin kuin cgroup.ExecResolver tekee.
func (c *Client) Resolve(nameOrID string) string {
	ctx, cancel := context.WithTimeout(c.ctx, 5*time.Second)
	defer cancel()

	info, err := c.cli.ContainerInspect(ctx, nameOrID)
	if err != nil {
		return nameOrID
	}
	return info.ID
}
