package cgroup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver on testidouble joka resolvaa kiinteästä taulusta
type mapResolver map[string]string

func (m mapResolver) Resolve(nameOrID string) string {
	if id, ok := m[nameOrID]; ok {
		return id
	}
	return nameOrID
}

// testEnv rakentaa cgroup hierarkian yhdelle containerille ja samplerin
// jonka kellonaikaa testit voivat siirtää käsin.
type testEnv struct {
	sampler   *Sampler
	cgroupDir string
	meminfo   string
	clock     time.Time
}

func newTestEnv(t *testing.T, name, id string) *testEnv {
	t.Helper()

	root := t.TempDir()
	cgroupDir := filepath.Join(root, "system.slice", "docker-"+id+".scope")
	require.NoError(t, os.MkdirAll(cgroupDir, 0o755))

	locator, err := NewLocatorAt(root)
	require.NoError(t, err)

	env := &testEnv{
		cgroupDir: cgroupDir,
		meminfo:   filepath.Join(root, "meminfo"),
		clock:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	sampler := NewSampler(mapResolver{name: id}, locator)
	sampler.meminfoPath = env.meminfo
	sampler.now = func() time.Time { return env.clock }
	env.sampler = sampler

	return env
}

func (e *testEnv) writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.cgroupDir, name), []byte(content), 0o644))
}

func (e *testEnv) writeDefaults(t *testing.T) {
	t.Helper()
	e.writeFile(t, "cpu.stat", "usage_usec 1000000\nuser_usec 800000\nsystem_usec 200000\n")
	e.writeFile(t, "memory.current", "500000000\n")
	e.writeFile(t, "memory.max", "1000000000\n")
}

func TestSampleFirstReportsZeroCPU(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)

	assert.Equal(t, testFullID, stats.ID)
	assert.Equal(t, "web", stats.Name)
	assert.Equal(t, 0.0, stats.CPUPercent)
	assert.Equal(t, uint64(1000000), stats.CPUUsageUsec)
	assert.Equal(t, uint64(200000), stats.SystemUsageUsec)
	assert.Equal(t, env.clock, stats.Timestamp)
}

func TestSampleCPUPercentOverOneSecond(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	_, err := env.sampler.Sample("web")
	require.NoError(t, err)

	// 500000 usec työtä / 1000000 usec aikaa = 50%
	env.clock = env.clock.Add(1 * time.Second)
	env.writeFile(t, "cpu.stat", "usage_usec 1500000\nsystem_usec 300000\n")

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, stats.CPUPercent, 0.001)
	assert.Equal(t, uint64(1500000), stats.CPUUsageUsec)
}

func TestSampleCPUCounterReset(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	_, err := env.sampler.Sample("web")
	require.NoError(t, err)

	env.clock = env.clock.Add(1 * time.Second)
	env.writeFile(t, "cpu.stat", "usage_usec 400\nsystem_usec 100\n")

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	// Nollautunut laskuri ei saa tuottaa negatiivista prosenttia
	assert.Equal(t, 0.0, stats.CPUPercent)
}

func TestSampleCPUZeroTimeDelta(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	_, err := env.sampler.Sample("web")
	require.NoError(t, err)

	// Kello ei liiku mittausten välissä
	env.writeFile(t, "cpu.stat", "usage_usec 2000000\nsystem_usec 300000\n")

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.CPUPercent)
}

func TestSampleMalformedCPULine(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	env.writeFile(t, "cpu.stat", "usage_usec garbage\nsystem_usec 200000\n")

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), stats.CPUUsageUsec)
	assert.Equal(t, uint64(200000), stats.SystemUsageUsec)
}

func TestSampleMemoryPercent(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.Equal(t, uint64(500000000), stats.MemoryUsage)
	assert.Equal(t, uint64(1000000000), stats.MemoryLimit)
	assert.Equal(t, 50.0, stats.MemoryPercent)
}

func TestSampleMemoryUnlimited(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	env.writeFile(t, "memory.max", "max\n")
	require.NoError(t, os.WriteFile(env.meminfo,
		[]byte("MemTotal:        8000000 kB\nMemFree:         100000 kB\n"), 0o644))

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.Equal(t, uint64(8000000*1024), stats.MemoryLimit)
}

func TestSampleMemoryUnlimitedNoMeminfo(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	env.writeFile(t, "memory.max", "max\n")

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	// Meminfo fallback epäonnistui - limit 0 ja prosentti 0
	assert.Equal(t, uint64(0), stats.MemoryLimit)
	assert.Equal(t, 0.0, stats.MemoryPercent)
}

func TestSampleBlockIO(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	env.writeFile(t, "io.stat",
		"8:0 rbytes=100 wbytes=200 rios=1 wios=1 dbytes=0 dios=0\n"+
			"259:0 rbytes=50 wbytes=25 rios=2 wios=2 dbytes=0 dios=0\n")

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.Equal(t, uint64(150), stats.BlockRead)
	assert.Equal(t, uint64(225), stats.BlockWrite)
}

func TestSampleMissingIOStat(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), stats.BlockRead)
	assert.Equal(t, uint64(0), stats.BlockWrite)
}

func TestSampleNetworkAlwaysZero(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	stats, err := env.sampler.Sample("web")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), stats.NetworkRx)
	assert.Equal(t, uint64(0), stats.NetworkTx)
}

func TestSampleMissingCPUStat(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeFile(t, "memory.current", "1\n")
	env.writeFile(t, "memory.max", "2\n")

	_, err := env.sampler.Sample("web")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu.stat")
}

func TestSampleMissingMemoryCurrent(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeFile(t, "cpu.stat", "usage_usec 1\n")
	env.writeFile(t, "memory.max", "2\n")

	_, err := env.sampler.Sample("web")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory.current")
}

func TestSampleGarbageMemoryCurrent(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	env.writeFile(t, "memory.current", "garbage\n")

	// Pakollisen tiedoston kelvoton sisältö kaataa koko mittauksen
	_, err := env.sampler.Sample("web")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory.current")
}

func TestSampleGarbageMemoryMax(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	env.writeFile(t, "memory.max", "garbage\n")

	_, err := env.sampler.Sample("web")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory.max")
}

func TestSampleUnknownContainer(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)

	_, err := env.sampler.Sample("ei-olemassa")
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSampleNotFoundEchoesCallerName(t *testing.T) {
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	// Nimi resolvautuu ID:ksi jolla ei ole cgroup hakemistoa
	env.sampler.resolver = mapResolver{
		"kadonnut": "aabbccddeeff00112233445566778899aabbccddeeff00112233445566778899",
	}

	_, err := env.sampler.Sample("kadonnut")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	// Diagnostiikkaan callerin antama nimi, ei resolvattu ID
	assert.Equal(t, "kadonnut", notFound.NameOrID)
}

func TestSampleCacheKeyedByName(t *testing.T) {
	// Sama container kahdella eri nimellä ei jaa cache entryä
	env := newTestEnv(t, "web", testFullID)
	env.writeDefaults(t)
	env.sampler.resolver = mapResolver{"web": testFullID, "myös-web": testFullID}

	_, err := env.sampler.Sample("web")
	require.NoError(t, err)

	env.clock = env.clock.Add(1 * time.Second)
	env.writeFile(t, "cpu.stat", "usage_usec 1500000\nsystem_usec 300000\n")

	stats, err := env.sampler.Sample("myös-web")
	require.NoError(t, err)
	// Toisen nimen ensimmäinen mittaus - rate on 0
	assert.Equal(t, 0.0, stats.CPUPercent)
}
