// Provides platform-appropriate paths for patchd.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS. The name "patchd" is used as the subdirectory under each base
// path.
package paths
