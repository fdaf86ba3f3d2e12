// internal/cgroup/sampler.go
package cgroup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rusenback/vessel/internal/model"
)

const defaultMeminfoPath = "/proc/meminfo"

// prevSample on edellisen mittauksen CPU laskuri ja kellonaika,
// CPU prosentin laskemista varten.
type prevSample struct {
	usageUsec uint64
	timeNs    uint64
}

// Sampler lukee containerin resurssilaskurit cgroupv2 tiedostoista ja
// muuntaa ne Stats recordiksi. Sampler pitää edellisen mittauksen
// muistissa per container nimi jotta CPU prosentti voidaan laskea
// kahden mittauksen erotuksesta.
type Sampler struct {
	resolver Resolver
	locator  *Locator

	mu   sync.Mutex
	prev map[string]prevSample

	// Testattavuutta varten
	meminfoPath string
	now         func() time.Time
}

// NewSampler luo samplerin
func NewSampler(resolver Resolver, locator *Locator) *Sampler {
	return &Sampler{
		resolver:    resolver,
		locator:     locator,
		prev:        make(map[string]prevSample),
		meminfoPath: defaultMeminfoPath,
		now:         time.Now,
	}
}

// Sample mittaa yhden containerin resurssit. Nimi resolvataan ja cgroup
// hakemisto etsitään joka kutsulla uudestaan, jotta container restart
// saman nimen alla ei riko mittausta.
func (s *Sampler) Sample(name string) (*model.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.resolver.Resolve(name)

	cgroupPath, err := s.locator.Locate(id)
	if err != nil {
		// Virheeseen callerin antama nimi, ei resolvattu ID
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, &NotFoundError{NameOrID: name}
		}
		return nil, err
	}

	cpuPercent, usageUsec, systemUsec, err := s.readCPU(cgroupPath, name)
	if err != nil {
		return nil, err
	}

	memUsage, memLimit, memPercent, err := s.readMemory(cgroupPath)
	if err != nil {
		return nil, err
	}

	blockRead, blockWrite := s.readBlockIO(cgroupPath)
	netRx, netTx := s.readNetwork()

	return &model.Stats{
		ID:              id,
		Name:            name,
		CPUPercent:      cpuPercent,
		CPUUsageUsec:    usageUsec,
		SystemUsageUsec: systemUsec,
		MemoryUsage:     memUsage,
		MemoryLimit:     memLimit,
		MemoryPercent:   memPercent,
		NetworkRx:       netRx,
		NetworkTx:       netTx,
		BlockRead:       blockRead,
		BlockWrite:      blockWrite,
		Timestamp:       s.now().UTC(),
	}, nil
}

// readCPU lukee cpu.stat tiedoston ja laskee CPU prosentin edellisen
// mittauksen suhteen. Ensimmäinen mittaus palauttaa aina 0.0 ja vain
// alustaa cachen.
func (s *Sampler) readCPU(cgroupPath, name string) (float64, uint64, uint64, error) {
	statPath := filepath.Join(cgroupPath, "cpu.stat")
	data, err := os.ReadFile(statPath)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read %s: %w", statPath, err)
	}

	var usageUsec, systemUsec uint64
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		// Rikkinäinen arvo jää nollaksi, yksi huono rivi ei kaada
		// koko mittausta
		switch fields[0] {
		case "usage_usec":
			usageUsec, _ = strconv.ParseUint(fields[1], 10, 64)
		case "system_usec":
			systemUsec, _ = strconv.ParseUint(fields[1], 10, 64)
		}
	}

	nowNs := uint64(s.now().UnixNano())

	cpuPercent := 0.0
	if prev, ok := s.prev[name]; ok {
		// Laskuri voi nollautua cgroup resetissä, delta ei saa mennä
		// negatiiviseksi
		var usageDelta uint64
		if usageUsec > prev.usageUsec {
			usageDelta = usageUsec - prev.usageUsec
		}
		if nowNs > prev.timeNs {
			timeDeltaUsec := (nowNs - prev.timeNs) / 1000
			if timeDeltaUsec > 0 {
				cpuPercent = float64(usageDelta) / float64(timeDeltaUsec) * 100.0
			}
		}
	}

	s.prev[name] = prevSample{usageUsec: usageUsec, timeNs: nowNs}

	return cpuPercent, usageUsec, systemUsec, nil
}

// readMemory lukee memory.current ja memory.max tiedostot. Jos limit on
// "max" (ei rajaa), käytetään hostin koko muistia /proc/meminfo:sta.
func (s *Sampler) readMemory(cgroupPath string) (uint64, uint64, float64, error) {
	currentPath := filepath.Join(cgroupPath, "memory.current")
	current, err := readUint(currentPath)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read %s: %w", currentPath, err)
	}

	maxPath := filepath.Join(cgroupPath, "memory.max")
	data, err := os.ReadFile(maxPath)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to read %s: %w", maxPath, err)
	}

	var max uint64
	if text := strings.TrimSpace(string(data)); text == "max" {
		max = s.systemMemory()
	} else {
		max, err = strconv.ParseUint(text, 10, 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("failed to parse %s: %w", maxPath, err)
		}
	}

	percent := 0.0
	if max > 0 {
		percent = float64(current) / float64(max) * 100.0
	}

	return current, max, percent, nil
}

// readNetwork palauttaa aina nollat. Verkkoliikenne pitäisi lukea
// containerin network namespacesta, mikä ei kuulu tähän työkaluun.
func (s *Sampler) readNetwork() (uint64, uint64) {
	return 0, 0
}

// readBlockIO summaa io.stat tiedoston rbytes ja wbytes arvot kaikilta
// laitteilta. Puuttuva io.stat ei ole virhe, kaikki controllerit eivät
// exposaa I/O laskureita.
func (s *Sampler) readBlockIO(cgroupPath string) (uint64, uint64) {
	statPath := filepath.Join(cgroupPath, "io.stat")
	data, err := os.ReadFile(statPath)
	if err != nil {
		return 0, 0
	}

	var readBytes, writeBytes uint64
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		// Rivi on muotoa "<device> rbytes=N wbytes=N rios=N ..."
		for _, field := range fields[1:] {
			key, value, ok := strings.Cut(field, "=")
			if !ok {
				continue
			}
			switch key {
			case "rbytes":
				n, _ := strconv.ParseUint(value, 10, 64)
				readBytes += n
			case "wbytes":
				n, _ := strconv.ParseUint(value, 10, 64)
				writeBytes += n
			}
		}
	}

	return readBytes, writeBytes
}

// systemMemory lukee hostin kokonaismuistin /proc/meminfo:sta tavuina.
// Lukuvirhe palauttaa 0, jolloin memory prosentiksi tulee 0.0.
func (s *Sampler) systemMemory() uint64 {
	data, err := os.ReadFile(s.meminfoPath)
	if err != nil {
		return 0
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return kb * 1024
	}

	return 0
}

func readUint(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
}
