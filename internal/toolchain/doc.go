// Package toolchain defines the descriptor of an installed language
// toolchain.
//
// A [Descriptor] records where a toolchain is installed and which version it
// is. Descriptors are produced by whatever installs or discovers toolchains;
// this package only carries them. A [Set] indexes descriptors by [Kind] so
// consumers can request "the rust toolchain" without knowing where the
// descriptor came from.
package toolchain
