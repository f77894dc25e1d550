// Package drivers provides the stock camera rig stages.
//
// All drivers are used through pointers: the rig keeps the pointer, and hosts
// get the same pointer back from camrig.Find to tune fields between updates.
package drivers
