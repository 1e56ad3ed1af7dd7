package models

// Estados de los artefactos generados. Cada familia usa un subconjunto;
// las transiciones persistidas nunca retroceden (salvo regeneración
// explícita, que reinicia el documento).
const (
	StatusPending          = "pending"
	StatusQueued           = "queued"
	StatusGenerating       = "generating"
	StatusGeneratingScript = "generating_script"
	StatusGeneratingAudio  = "generating_audio"
	StatusProcessing       = "processing"
	StatusCompleted        = "completed"
	StatusFailed           = "failed"
)

// Cadenas de estados por familia de artefacto, en orden de avance.
var (
	GenericLifecycle = []string{StatusPending, StatusGenerating, StatusCompleted}
	PodcastLifecycle = []string{StatusPending, StatusGeneratingScript, StatusGeneratingAudio, StatusCompleted}
	VideoLifecycle   = []string{StatusPending, StatusQueued, StatusGenerating, StatusProcessing, StatusCompleted}
)

// IsTerminalStatus indica si un estado ya no admite transiciones.
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}

// CanAdvance valida una transición dentro de una cadena: solo se avanza
// hacia adelante, y failed es alcanzable desde cualquier estado no terminal.
func CanAdvance(lifecycle []string, from, to string) bool {
	if IsTerminalStatus(from) {
		return false
	}
	if to == StatusFailed {
		return true
	}
	fromIdx, toIdx := -1, -1
	for i, s := range lifecycle {
		if s == from {
			fromIdx = i
		}
		if s == to {
			toIdx = i
		}
	}
	if fromIdx < 0 || toIdx < 0 {
		return false
	}
	return toIdx > fromIdx
}
