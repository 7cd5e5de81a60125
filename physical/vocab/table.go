// Package vocab holds the fixed ordinal to string tables of the controller API.
// These strings are the output contract and must not change.
package vocab

// Table maps small integer ordinals to their canonical strings.
type Table struct {
	name    string
	entries map[uint64]string
}

func newTable(name string, entries map[uint64]string) *Table {
	return &Table{name: name, entries: entries}
}

func (t *Table) String() string {
	return t.name
}

// Lookup returns the string of an ordinal. Unmapped ordinals report false.
func (t *Table) Lookup(ordinal uint64) (string, bool) {
	s, ok := t.entries[ordinal]
	return s, ok
}

// Parse returns the ordinal of a canonical string.
func (t *Table) Parse(s string) (uint64, bool) {
	for k, v := range t.entries {
		if v == s {
			return k, true
		}
	}
	return 0, false
}

// Len returns the number of mapped ordinals.
func (t *Table) Len() int {
	return len(t.entries)
}

var OperStatus = newTable("oper-status", map[uint64]string{
	0: "down",
	1: "up",
	2: "unknown",
})

var ControllerOperStatus = newTable("controller-oper-status", map[uint64]string{
	0: "down",
	1: "up",
	2: "waiting_audit",
	3: "auditing",
})

var AdminStatus = newTable("admin-status", map[uint64]string{
	0: "up",
	1: "down",
})

var ControllerType = newTable("controller-type", map[uint64]string{
	0: "bypass",
	1: "pfc",
	2: "vnp",
	3: "polc",
	4: "odc",
})

var AuditStatus = newTable("audit-status", map[uint64]string{
	0: "disable",
	1: "enable",
})

var PortDirection = newTable("port-direction", map[uint64]string{
	0: "internal",
	1: "external",
	2: "unknown",
})

var PortDuplex = newTable("port-duplex", map[uint64]string{
	0: "half",
	1: "full",
})

var DomainType = newTable("domain-type", map[uint64]string{
	0: "default",
	1: "normal",
})

var LogicalPortType = newTable("logical-port-type", map[uint64]string{
	1:  "switch",
	2:  "physical_port",
	11: "trunk_port",
	12: "subdomain",
	13: "tunnel_endpoint",
})

var OperDownCriteria = newTable("oper-down-criteria", map[uint64]string{
	0: "any",
	1: "all",
})

var BoundaryCandidate = newTable("boundary-candidate", map[uint64]string{
	0: "no",
	1: "yes",
})

var DataFlowReason = newTable("dataflow-reason", map[uint64]string{
	0: "success",
	1: "operation_not_supported",
	2: "exceeds_flow_limit",
	3: "ctrlr_disconnected",
	4: "dst_not_reached",
	5: "system_error",
})

var DataFlowStatus = newTable("dataflow-status", map[uint64]string{
	0: "init",
	1: "activated",
	2: "deactivated",
})
