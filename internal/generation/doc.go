// Package generation defines the interface and errors for vocabulary
// suggestion generation. It serves as a boundary between the application
// core and external AI/LLM services, following the hexagonal architecture
// pattern.
package generation
