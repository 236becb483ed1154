package vecjson

import "github.com/klauspost/cpuid/v2"

// SupportedCPU reports whether the running CPU has the feature set the
// teacher's assembly kernels required (AVX2 + CLMUL). This implementation
// has a single portable scalar code path and does not gate parsing on the
// result; the probe is kept so callers migrating from the teacher, or
// wanting to report hardware capability in diagnostics, have somewhere to
// call.
func SupportedCPU() bool {
	return cpuid.CPU.Supports(cpuid.AVX2, cpuid.CLMUL)
}
