// Package domain contains the task entity and the rules that keep it valid:
// title normalization, the priority enumeration and calendar due dates.
// It is independent of any storage or delivery mechanism.
package domain
