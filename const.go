package qrng

// Core simulation parameters.
const (
	numQubits       = 8                          // number of state lanes
	stateMultiplier = 16                         // bytes of refill buffer per lane
	bufferSize      = numQubits * stateMultiplier // 128 bytes
	bufferWords     = bufferSize / 8              // 16 uint64 words
	mixingRounds    = 4                           // outer round count inside a step
	poolSize        = 16                          // entropy pool slots
	warmupSteps     = 2 * mixingRounds            // steps run at the end of init/reseed
)

// Magic mixing constants. Names are our own; the bit patterns are load-bearing
// and must not change.
const (
	fineStructure = 0x7297352743776A1B
	planck        = 0x6955927086495225
	rydberg       = 0x9E3779B97F4A7C15
	electronG     = 0x02B992DDFA232945
	goldenRatio   = 0x9E3779B97F4A7C15
	heisenberg    = 0xC13FA9A902A6328F
	schrodinger   = 0x91E10DA5C79E7B1D
	pauliX        = 0x4C957F2D8A1E6B3C
	pauliY        = 0xD3E99E3B6C1A4F78
	pauliZ        = 0x8F142FC07892A5B6

	splitMixC1 = 0xBF58476D1CE4E5B9
	splitMixC2 = 0x94D049BB133111EB
)
