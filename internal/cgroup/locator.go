// internal/cgroup/locator.go
package cgroup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRoot on cgroupv2 unified hierarkian mount piste
const DefaultRoot = "/sys/fs/cgroup"

// shortIDLen on Dockerin lyhyen ID:n pituus
const shortIDLen = 12

// NotFoundError kertoo ettei containerin cgroup hakemistoa löytynyt
// kummastakaan slicestä.
type NotFoundError struct {
	NameOrID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("container %s not found in cgroup hierarchy", e.NameOrID)
}

// Locator etsii containerin cgroup hakemiston cgroupv2 hierarkiasta
type Locator struct {
	root string
}

// NewLocator luo locatorin oletus mount pisteellä
func NewLocator() (*Locator, error) {
	return NewLocatorAt(DefaultRoot)
}

// NewLocatorAt luo locatorin annetulla juurella (testejä varten)
func NewLocatorAt(root string) (*Locator, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("cgroupv2 not found at %s: %w", root, err)
	}
	return &Locator{root: root}, nil
}

// Locate palauttaa containerin cgroup hakemiston absoluuttisen polun.
// Hakujärjestys:
//  1. system.slice/docker-<id>.scope (täysi ID)
//  2. system.slice/docker-<id[:12]>.scope (lyhyt ID)
//  3. rekursiivinen substring haku system.slicestä
//  4. samat vaiheet user.slicestä (rootless Docker)
func (l *Locator) Locate(id string) (string, error) {
	shortID := id
	if len(shortID) > shortIDLen {
		shortID = shortID[:shortIDLen]
	}

	// system.slice ensin, user.slice kattaa rootless Dockerin
	for _, slice := range []string{"system.slice", "user.slice"} {
		base := filepath.Join(l.root, slice)
		if !dirExists(base) {
			continue
		}
		if path, ok := locateIn(base, id, shortID); ok {
			return path, nil
		}
	}

	return "", &NotFoundError{NameOrID: id}
}

// locateIn kokeilee yhden slicen alla ensin suoraa scope nimeä täydellä
// ja lyhyellä ID:llä, sitten rekursiivista hakua.
func locateIn(base, id, shortID string) (string, bool) {
	direct := filepath.Join(base, fmt.Sprintf("docker-%s.scope", id))
	if dirExists(direct) {
		return direct, true
	}

	short := filepath.Join(base, fmt.Sprintf("docker-%s.scope", shortID))
	if dirExists(short) {
		return short, true
	}

	return searchTree(base, id, shortID)
}

// searchTree etsii syvyyssuuntaisesti hakemistoa jonka nimi sisältää
// ID:n tai lyhyen ID:n. Lukuvirhe yhdessä haarassa (oikeudet, container
// ehti poistua) ei keskeytä sisarhaarojen läpikäyntiä.
func searchTree(base, id, shortID string) (string, bool) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(base, entry.Name())
		name := entry.Name()

		if containsID(name, id, shortID) {
			return path, true
		}

		if found, ok := searchTree(path, id, shortID); ok {
			return found, true
		}
	}

	return "", false
}

func containsID(name, id, shortID string) bool {
	return strings.Contains(name, id) || strings.Contains(name, shortID)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
