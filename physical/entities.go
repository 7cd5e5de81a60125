package physical

import (
	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical/vocab"
)

const (
	u8  = ipc.KindUint8
	u16 = ipc.KindUint16
	u32 = ipc.KindUint32
	u64 = ipc.KindUint64
)

func operStatus() field {
	return enum("oper_status", "operstatus", u8, vocab.OperStatus)
}

func neighborFields() []field {
	return []field{
		str("connected_switch_id", "connectedswitchid"),
		str("connected_port_id", "connectedportname"),
		str("connected_controller_id", "connectedcontrollerid"),
	}
}

var portStats = schema{
	name: "val_port_stats",
	fields: []field{
		num("rx_packets", "rxpackets", u64),
		num("tx_packets", "txpackets", u64),
		num("rx_bytes", "rxbytes", u64),
		num("tx_bytes", "txbytes", u64),
		num("rx_dropped", "rxdropped", u64),
		num("tx_dropped", "txdropped", u64),
		num("rx_errors", "rxerrors", u64),
		num("tx_errors", "txerrors", u64),
		num("rx_frame_err", "rxframeerr", u64),
		num("rx_over_err", "rxovererr", u64),
		num("rx_crc_err", "rxcrcerr", u64),
		num("collisions", "collisions", u64),
	},
}

// linkName prepends the composite link name built from the four ids.
func linkName(ids *Object) *Object {
	out := NewObject()
	name := ""
	for i, k := range []string{"switch1id", "port1name", "switch2id", "port2name"} {
		v, _ := ids.Get(k)
		if i > 0 {
			name += "-"
		}
		s, _ := v.(string)
		name += s
	}
	out.Set("linkname", name)
	for _, k := range ids.Keys() {
		v, _ := ids.Get(k)
		out.Set(k, v)
	}
	return out
}

var entities = map[Kind]*entity{
	KindController: {
		singular: "controller",
		plural:   "controllers",
		keyType:  KeyTypeController,
		key:      schema{"key_ctr", []field{str("controller_name", "controllerid")}},
		base: &schema{"val_ctr", []field{
			vendorEnum("type", "type", u8, vocab.ControllerType),
			str("version", "version"),
			str("description", "description"),
			addr("ip_address", "ipaddr", ipc.KindIPv4),
			str("user", "username"),
			enum("enable_audit", "auditstatus", u8, vocab.AuditStatus),
			num("port", "port", u16),
		}},
		state: &schema{"val_ctr_st", []field{
			str("actual_version", "actualversion"),
			enum("oper_status", "operstatus", u8, vocab.ControllerOperStatus),
			str("actual_id", "actualid"),
		}},
		inner: "controller",
	},
	KindDomain: {
		singular: "domain",
		plural:   "domains",
		keyType:  KeyTypeDomain,
		key:      schema{"key_ctr_domain", []field{str("domain_name", "domainid")}},
		base: &schema{"val_ctr_domain", []field{
			enum("type", "type", u8, vocab.DomainType),
			str("description", "description"),
		}},
		state: &schema{"val_ctr_domain_st", []field{operStatus()}},
		inner: "domain",
	},
	KindBoundary: {
		singular: "boundary",
		plural:   "boundaries",
		keyType:  KeyTypeBoundary,
		key:      schema{"key_boundary", []field{str("boundary_id", "boundaryid")}},
		base: &schema{"val_boundary", []field{
			str("description", "description"),
			group("link",
				str("controller_name1", "controller1id"),
				str("domain_name1", "domain1id"),
				str("logical_port_id1", "logicalport1id"),
				str("controller_name2", "controller2id"),
				str("domain_name2", "domain2id"),
				str("logical_port_id2", "logicalport2id"),
			),
		}},
		state: &schema{"val_boundary_st", []field{operStatus()}},
		inner: "boundary",
	},
	KindSwitch: {
		singular: "switch",
		plural:   "switches",
		keyType:  KeyTypeSwitch,
		key:      schema{"key_switch", []field{str("switch_id", "switchid")}},
		base: &schema{"val_switch", []field{
			str("description", "description"),
			str("model", "model"),
			addr("ip_address", "ipaddr", ipc.KindIPv4),
			addr("ipv6_address", "ipv6addr", ipc.KindIPv6),
			enum("admin_status", "adminstatus", u8, vocab.AdminStatus),
			str("domain_name", "domainid"),
		}},
		state: &schema{"val_switch_st", []field{
			operStatus(),
			str("manufacturer", "manufacturer"),
			str("hardware", "hardware"),
			str("software", "software"),
			hexnum("alarms_status", "alarmsstatus", u64),
		}},
		inner: "switch",
	},
	KindPort: {
		singular: "port",
		plural:   "ports",
		keyType:  KeyTypePort,
		key:      schema{"key_port", []field{str("port_id", "portname")}},
		base: &schema{"val_port", []field{
			num("port_number", "portid", u32),
			str("description", "description"),
			enum("admin_status", "adminstatus", u8, vocab.AdminStatus),
			num("trunk_allowed_vlan", "trunkallowedvlan", u16),
		}},
		state: &schema{"val_port_st", []field{
			operStatus(),
			mac("mac_address", "macaddr"),
			enum("direction", "direction", u8, vocab.PortDirection),
			enum("duplex", "duplex", u8, vocab.PortDuplex),
			num("speed", "speed", u64),
			hexnum("alarms_status", "alarmsstatus", u64),
			str("logical_port_id", "logicalportid"),
		}},
		inner:    "port",
		stats:    &portStats,
		statsKey: "statistics",
	},
	KindPortNeighbor: {
		singular: "neighbor",
		plural:   "neighbors",
		keyType:  KeyTypePort,
		key:      schema{"key_port", []field{str("port_id", "portname")}},
		base:     &schema{"val_port_neighbor", neighborFields()},
	},
	KindLink: {
		singular: "link",
		plural:   "links",
		keyType:  KeyTypeLink,
		key: schema{"key_link", []field{
			str("switch_id1", "switch1id"),
			str("port_id1", "port1name"),
			str("switch_id2", "switch2id"),
			str("port_id2", "port2name"),
		}},
		compose: linkName,
		base:    &schema{"val_link", []field{str("description", "description")}},
		state:   &schema{"val_link_st", []field{operStatus()}},
		inner:   "link",
	},
	KindLogicalPort: {
		singular: "logicalport",
		plural:   "logicalports",
		keyType:  KeyTypeLogicalPort,
		key:      schema{"key_logical_port", []field{str("port_id", "logicalportid")}},
		base: &schema{"val_logical_port", []field{
			str("description", "description"),
			enum("port_type", "type", u8, vocab.LogicalPortType),
			str("switch_id", "switchid"),
			str("physical_port_id", "portname"),
			enum("oper_down_criteria", "operdowncriteria", u8, vocab.OperDownCriteria),
		}},
		state: &schema{"val_logical_port_st", []field{operStatus()}},
		inner: "logical_port",
	},
	KindLogicalPortMember: {
		singular: "memberport",
		plural:   "memberports",
		keyType:  KeyTypeLogicalMemberPort,
		key: schema{"key_logical_member_port", []field{
			str("switch_id", "switchid"),
			str("physical_port_id", "portname"),
		}},
	},
	KindLogicalPortNeighbor: {
		singular: "neighbor",
		plural:   "neighbors",
		keyType:  KeyTypeLogicalPort,
		key:      schema{"key_logical_port", []field{str("port_id", "logicalportid")}},
		base:     &schema{"val_logical_port_neighbor", neighborFields()},
	},
	KindLogicalPortBoundary: {
		singular: "logicalport",
		plural:   "logicalports",
		keyType:  KeyTypeLogicalPort,
		key:      schema{"key_logical_port", []field{str("port_id", "logicalportid")}},
		base: &schema{"val_logical_port_boundary", []field{
			enum("boundary_candidate", "boundarycandidate", u8, vocab.BoundaryCandidate),
			str("connected_controller_id", "connectedcontrollerid"),
			str("connected_domain_id", "connecteddomainid"),
		}},
	},
	KindPathPolicy: {
		singular: "pathpolicy",
		plural:   "pathpolicies",
		keyType:  KeyTypePathPolicy,
		key:      schema{"key_path_policy", []field{num("policy_id", "policyid", u8)}},
		base:     &schema{"val_path_policy", []field{num("default_cost", "defaultcost", u64)}},
	},
	KindPathPolicyLinkWeight: {
		singular: "linkweight",
		plural:   "linkweights",
		keyType:  KeyTypeLinkWeight,
		key: schema{"key_path_policy_link_weight", []field{
			str("switch_id", "switchid"),
			str("port_name", "portname"),
		}},
		base: &schema{"val_path_policy_link_weight", []field{num("weight", "weight", u64)}},
	},
	KindPathPolicyDisabledSwitch: {
		singular: "disabledswitch",
		plural:   "disabledswitches",
		keyType:  KeyTypeDisabledSwitch,
		key:      schema{"key_path_policy_disabled_switch", []field{str("switch_id", "switchid")}},
	},
	KindControllerDataFlow: {
		singular: "dataflow",
		plural:   "dataflows",
		keyType:  KeyTypeControllerDataFlow,
		key: schema{"key_ctr_dataflow", []field{
			str("controller_name", "controllerid"),
			num("flow_id", "flowid", u64),
		}},
		custom: (*session).controllerDataFlowInstance,
	},
	KindDataFlow: {
		singular: "dataflow",
		plural:   "dataflows",
		keyType:  KeyTypeDataFlow,
		key: schema{"key_dataflow", []field{
			str("controller_name", "controllerid"),
			str("switch_id", "switchid"),
			str("port_id", "portname"),
			vlan("vlan_id", "vlanid"),
			mac("src_mac_address", "srcmacaddr"),
		}},
	},
}

func init() {
	for k, e := range entities {
		e.kind = k
	}
}
