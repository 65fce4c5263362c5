// Package gridapi provides the domain types for the GridIron REST API:
// the object-mask field-selection tree, the error taxonomy, dynamic
// record helpers, and builder configuration.
//
// # Overview
//
// The GridIron API addresses server-side objects by <service>/<function>
// paths and shapes each response with a sparse field-selection mask. This
// package defines the mask tree (ObjectMask), the schemaless result
// helpers (Record, RecordSet), and the Config consumed by the gridclient
// package, which wires configuration, transport, and authentication into
// a chainable request builder. Most consumers should import gridclient to
// construct a builder and use the types exposed here to drive it.
//
// Building a mask
//
//	mask := gridapi.NewObjectMask()
//	_ = mask.Push("", "id", "hostname")
//	_ = mask.Set(gridapi.MaskNode{"datacenter": {"name": {}}}, "")
//	fmt.Println(mask) // mask[datacenter.name]
//
// Every mutation is validated before it is applied: keys may not contain
// the '.' path separator, and paths may not skip over segments that do
// not exist yet. A failed mutation leaves the tree exactly as it was.
//
// # Records
//
// Responses are decoded into dynamic values because their shape follows
// the mask. Record and RecordSet wrap those values with JSONPath
// navigation and typed accessors:
//
//	rec, _ := gridapi.AsRecord(result)
//	name := rec.String("datacenter.name")
package gridapi
