package power

import "path"

// Paths locates the interactive governor and the cpufreq policy it tunes.
// Blank fields fall back to the stock fugu layout.
type Paths struct {
	Interactive string `json:"interactive" yaml:"interactive"` //fugu: /sys/devices/system/cpu/cpufreq/interactive
	CPUFreq     string `json:"cpufreq" yaml:"cpufreq"`         //fugu: /sys/devices/system/cpu/cpu0/cpufreq
}

const (
	StockInteractive = "/sys/devices/system/cpu/cpufreq/interactive"
	StockCPUFreq     = "/sys/devices/system/cpu/cpu0/cpufreq"
)

// Interactive governor attributes.
const (
	nodeBoost              = "boost"
	nodeBoostpulse         = "boostpulse"
	nodeBoostpulseDuration = "boostpulse_duration"
	nodeGoHispeedLoad      = "go_hispeed_load"
	nodeHispeedFreq        = "hispeed_freq"
	nodeIoIsBusy           = "io_is_busy"
	nodeTargetLoads        = "target_loads"
)

// cpufreq policy attributes.
const (
	nodeScalingMinFreq = "scaling_min_freq"
	nodeScalingMaxFreq = "scaling_max_freq"
)

func StockPaths() Paths {
	return Paths{Interactive: StockInteractive, CPUFreq: StockCPUFreq}
}

// Init fills in any path the manifest left out.
func (p *Paths) Init() {
	if p.Interactive == "" {
		p.Interactive = StockInteractive
	}
	if p.CPUFreq == "" {
		p.CPUFreq = StockCPUFreq
	}
}

func (p *Paths) interactive(node string) string {
	return path.Join(p.Interactive, node)
}

func (p *Paths) cpufreq(node string) string {
	return path.Join(p.CPUFreq, node)
}
