// Package pose holds the value types the camera rig passes between drivers:
// a Transform (position and unit rotation), the Handedness convention that
// decides which rotated axis is forward, and the rotation helpers built on them.
//
// Transforms are plain values. Drivers never mutate the parent they receive;
// they return a new Transform.
package pose
