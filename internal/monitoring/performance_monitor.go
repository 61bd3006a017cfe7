package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PerformanceMonitor tracks frame timing and input resolution counters
type PerformanceMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Per-pass metrics
	resolveTime atomic.Uint64 // nanoseconds spent in the last layout/resolve pass
	renderTime  atomic.Uint64

	// Input metrics
	pointerFrames  atomic.Uint64 // frames that carried a pointer sample
	hoverChanges   atomic.Uint64
	pressesEmitted atomic.Uint64

	// Statistics
	mutex        sync.RWMutex
	avgFrameTime float64
	totalFrame   uint64
	startTime    time.Time

	// Configuration
	enableDetailed bool
	fpsAlertFloor  float64
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:      time.Now(),
		enableDetailed: true,
		fpsAlertFloor:  30,
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ft.monitor.RecordFrame(time.Since(ft.startTime))
}

// RecordFrame stores the duration of one completed frame
func (pm *PerformanceMonitor) RecordFrame(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	count := pm.frameCount.Add(1)

	if pm.enableDetailed {
		pm.mutex.Lock()
		pm.totalFrame += uint64(d.Nanoseconds())
		pm.avgFrameTime = float64(pm.totalFrame) / float64(count)
		pm.mutex.Unlock()
	}
}

// RecordSample counts one frame's pointer outcome
func (pm *PerformanceMonitor) RecordSample(present, hoverChanged, pressed bool) {
	if present {
		pm.pointerFrames.Add(1)
	}
	if hoverChanged {
		pm.hoverChanges.Add(1)
	}
	if pressed {
		pm.pressesEmitted.Add(1)
	}
}

// InputMetrics is a snapshot for the debug overlay
type InputMetrics struct {
	Frames          uint64
	PointerFrames   uint64
	HoverChanges    uint64
	Presses         uint64
	FramesPerSecond float64
	AvgFrameTime    time.Duration
	ResolveTime     time.Duration
	RenderTime      time.Duration
	MemoryUsageMB   uint64
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() InputMetrics {
	pm.mutex.RLock()
	avg := pm.avgFrameTime
	pm.mutex.RUnlock()

	frameTime := pm.frameTime.Load()
	fps := 0.0
	if frameTime > 0 {
		fps = float64(time.Second) / float64(frameTime)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return InputMetrics{
		Frames:          pm.frameCount.Load(),
		PointerFrames:   pm.pointerFrames.Load(),
		HoverChanges:    pm.hoverChanges.Load(),
		Presses:         pm.pressesEmitted.Load(),
		FramesPerSecond: fps,
		AvgFrameTime:    time.Duration(avg),
		ResolveTime:     time.Duration(pm.resolveTime.Load()),
		RenderTime:      time.Duration(pm.renderTime.Load()),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts reports a frame rate low enough to make dwell timing feel laggy
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	alerts := make([]PerformanceAlert, 0)

	frameTime := pm.frameTime.Load()
	if frameTime > 0 {
		fps := float64(time.Second) / float64(frameTime)
		if fps < pm.fpsAlertFloor {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "Frame rate is below 30 FPS",
				Value:     fps,
				Threshold: pm.fpsAlertFloor,
			})
		}
	}

	return alerts
}

// EnableDetailedLogging enables/disables running averages
func (pm *PerformanceMonitor) EnableDetailedLogging(enabled bool) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.enableDetailed = enabled
}

// Uptime returns time since creation or the last Reset
func (pm *PerformanceMonitor) Uptime() time.Duration {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()
	return time.Since(pm.startTime)
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.resolveTime.Store(0)
	pm.renderTime.Store(0)
	pm.pointerFrames.Store(0)
	pm.hoverChanges.Store(0)
	pm.pressesEmitted.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.totalFrame = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case "resolve":
		pm.resolveTime.Store(uint64(duration.Nanoseconds()))
	case "render":
		pm.renderTime.Store(uint64(duration.Nanoseconds()))
	}

	return duration
}
