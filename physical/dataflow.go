package physical

import (
	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/physical/vocab"
)

// maskValid is the v_mask value that marks a mask field as present.
const maskValid = 1

type matchVariant struct {
	value field
	// mask is the companion mask field, empty for variants without one.
	mask field
}

type actionVariant struct {
	values []field
	// marker is set to true instead of decoding the payload.
	marker string
}

func masked(value, mask field) matchVariant {
	return matchVariant{value: value, mask: mask}
}

var matchVariants = map[vocab.MatchType]matchVariant{
	vocab.MatchInPort:  {value: num("in_port", "inport", u32)},
	vocab.MatchDlSrc:   masked(mac("dl_addr", "macsrcaddr"), mac("dl_addr_mask", "macsrcaddr_mask")),
	vocab.MatchDlDst:   masked(mac("dl_addr", "macdstaddr"), mac("dl_addr_mask", "macdstaddr_mask")),
	vocab.MatchDlType:  {value: hexnum("dl_type", "macethertype", u16)},
	vocab.MatchVlanId:  {value: vlan("vlan_id", "vlanid")},
	vocab.MatchVlanPcp: {value: num("vlan_pcp", "vlanpriority", u8)},
	vocab.MatchIpTos:   {value: num("ip_tos", "iptos", u8)},
	vocab.MatchIpProto: {value: num("ip_proto", "ipproto", u8)},
	vocab.MatchIpv4Src: masked(
		addr("ipv4_addr", "ipsrcaddr", ipc.KindIPv4),
		addr("ipv4_addr_mask", "ipsrcaddr_mask", ipc.KindIPv4)),
	vocab.MatchIpv4Dst: masked(
		addr("ipv4_addr", "ipdstaddr", ipc.KindIPv4),
		addr("ipv4_addr_mask", "ipdstaddr_mask", ipc.KindIPv4)),
	vocab.MatchIpv6Src: masked(
		addr("ipv6_addr", "ipv6srcaddr", ipc.KindIPv6),
		addr("ipv6_addr_mask", "ipv6srcaddr_mask", ipc.KindIPv6)),
	vocab.MatchIpv6Dst: masked(
		addr("ipv6_addr", "ipv6dstaddr", ipc.KindIPv6),
		addr("ipv6_addr_mask", "ipv6dstaddr_mask", ipc.KindIPv6)),
	vocab.MatchTpSrc: masked(num("tp_port", "l4srcport", u16), num("tp_port_mask", "l4srcport_mask", u16)),
	vocab.MatchTpDst: masked(num("tp_port", "l4dstport", u16), num("tp_port_mask", "l4dstport_mask", u16)),
}

func action(values ...field) actionVariant {
	return actionVariant{values: values}
}

var actionVariants = map[vocab.ActionType]actionVariant{
	vocab.ActionOutput: action(num("output_port", "outputport", u32)),
	vocab.ActionEnqueue: action(
		num("output_port", "enqueueport", u32),
		num("enqueue_id", "queueid", u16)),
	vocab.ActionSetDlSrc:   action(mac("dl_addr", "setmacsrcaddr")),
	vocab.ActionSetDlDst:   action(mac("dl_addr", "setmacdstaddr")),
	vocab.ActionSetVlanId:  action(vlan("vlan_id", "setvlanid")),
	vocab.ActionSetVlanPcp: action(num("vlan_pcp", "setvlanpriority", u8)),
	vocab.ActionStripVlan:  {marker: "stripvlanheader"},
	vocab.ActionSetIpv4Src: action(addr("ipv4_addr", "setipsrcaddr", ipc.KindIPv4)),
	vocab.ActionSetIpv4Dst: action(addr("ipv4_addr", "setipdstaddr", ipc.KindIPv4)),
	vocab.ActionSetIpTos:   action(num("ip_tos", "setiptos", u8)),
	vocab.ActionSetTpSrc:   action(num("tp_port", "setl4srcport", u16)),
	vocab.ActionSetTpDst:   action(num("tp_port", "setl4dstport", u16)),
	vocab.ActionSetIpv6Src: action(addr("ipv6_addr", "setipv6srcaddr", ipc.KindIPv6)),
	vocab.ActionSetIpv6Dst: action(addr("ipv6_addr", "setipv6dstaddr", ipc.KindIPv6)),
}

var dataFlowCommon = []field{
	str("controller_name", "controllerid"),
	vendorEnum("controller_type", "controllertype", u8, vocab.ControllerType),
	num("flow_id", "flowid", u64),
	enum("status", "status", u32, vocab.DataFlowStatus),
	str("vtn_id", "vtnid"),
	num("policy_index", "policyindex", u32),
	str("ingress_switch_id", "ingressswitchid"),
	str("in_port", "inport"),
	num("in_station_id", "instationid", u64),
	str("egress_switch_id", "egressswitchid"),
	str("out_port", "outport"),
	num("out_station_id", "outstationid", u64),
	num("created_time", "createdtime", u64),
	num("idle_timeout", "idletimeout", u32),
	num("hard_timeout", "hardtimeout", u32),
}

var pathInfo = []field{
	str("switch_id", "switchid"),
	str("in_port", "inport"),
	str("out_port", "outport"),
}

// appendGated appends one gated field to the array bucket f.key.
func (s *session) appendGated(obj *Object, st *ipc.Struct, f field) error {
	v, valid, err := st.Read(f.id, f.kind)
	if err != nil {
		return err
	}
	if !ShouldEmit(valid) {
		return nil
	}
	if valid == ipc.ValidNoValue {
		return requireAppend(obj, valid, f.key, "")
	}
	text, ok, err := s.render(f, v)
	if err != nil || !ok {
		return err
	}
	return requireAppend(obj, valid, f.key, text)
}

// match consumes one tag struct and its payload.
func (s *session) match(cur *ipc.Cursor, obj *Object) error {
	tag, err := cur.NextStruct()
	if err != nil {
		return err
	}
	t, _, err := tag.Uint("match_type")
	if err != nil {
		return err
	}
	variant, ok := matchVariants[vocab.MatchType(t)]
	if !ok {
		return ErrUnknownTag{Stream: "match", Tag: t}
	}
	payload, err := cur.NextStruct()
	if err != nil {
		return err
	}
	if err := s.appendGated(obj, payload, variant.value); err != nil {
		return err
	}
	if variant.mask.id == "" {
		return nil
	}
	m, _, err := payload.Uint("v_mask")
	if err != nil {
		return err
	}
	if m != maskValid {
		return nil
	}
	return s.appendGated(obj, payload, variant.mask)
}

// action consumes one tag struct and its payload.
func (s *session) action(cur *ipc.Cursor, obj *Object) error {
	tag, err := cur.NextStruct()
	if err != nil {
		return err
	}
	t, _, err := tag.Uint("action_type")
	if err != nil {
		return err
	}
	variant, ok := actionVariants[vocab.ActionType(t)]
	if !ok {
		return ErrUnknownTag{Stream: "action", Tag: t}
	}
	payload, err := cur.NextStruct()
	if err != nil {
		return err
	}
	if variant.marker != "" {
		obj.Set(variant.marker, true)
		return nil
	}
	for _, f := range variant.values {
		if err := s.appendGated(obj, payload, f); err != nil {
			return err
		}
	}
	return nil
}

// controllerFlow consumes one controller data-flow unit: the common struct
// followed by its match, action and path-info sub-streams.
func (s *session) controllerFlow(cur *ipc.Cursor) (*Object, error) {
	cmn, err := cur.NextStruct()
	if err != nil {
		return nil, err
	}
	obj := NewObject()
	if err := s.fields(obj, cmn, dataFlowCommon); err != nil {
		return nil, err
	}

	counts := [3]uint64{}
	for i, id := range []string{"match_count", "action_count", "path_info_count"} {
		if counts[i], _, err = cmn.Uint(id); err != nil {
			return nil, err
		}
	}

	match := NewObject()
	for i := uint64(0); i < counts[0]; i++ {
		if err := s.match(cur, match); err != nil {
			return nil, err
		}
	}
	if match.Len() > 0 {
		obj.Set("match", match)
	}

	action := NewObject()
	for i := uint64(0); i < counts[1]; i++ {
		if err := s.action(cur, action); err != nil {
			return nil, err
		}
	}
	if action.Len() > 0 {
		obj.Set("action", action)
	}

	if counts[2] > 0 {
		paths := []any{}
		for i := uint64(0); i < counts[2]; i++ {
			st, err := cur.NextStruct()
			if err != nil {
				return nil, err
			}
			path := NewObject()
			if err := s.fields(path, st, pathInfo); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
		obj.Set("pathinfos", paths)
	}

	s.trace("Controller data-flow decoded", "matches", counts[0], "actions", counts[1], "paths", counts[2])
	return obj, nil
}

func (s *session) controllerDataFlowInstance(cur *ipc.Cursor) (*Object, error) {
	if _, err := cur.NextUint(); err != nil {
		return nil, err
	}
	if _, err := cur.NextStruct(); err != nil {
		return nil, err
	}
	return s.controllerFlow(cur)
}

// dataFlows decodes a whole data-flow response:
// [key type, key, n, n × (flow, controller_count × controller unit)].
func (s *session) dataFlows(cur *ipc.Cursor) (*Object, error) {
	if _, err := cur.NextUint(); err != nil {
		return nil, err
	}
	if _, err := cur.NextStruct(); err != nil {
		return nil, err
	}
	n, err := cur.NextUint()
	if err != nil {
		return nil, err
	}

	flows := []any{}
	for i := uint64(0); i < n; i++ {
		flow, err := s.dataFlow(cur)
		if err != nil {
			return nil, err
		}
		flows = append(flows, flow)
	}

	root := NewObject()
	root.Set("dataflows", flows)
	return root, nil
}

func (s *session) dataFlow(cur *ipc.Cursor) (*Object, error) {
	df, err := cur.NextStruct()
	if err != nil {
		return nil, err
	}
	obj := NewObject()

	// reason and controller_count are used whatever their validity flag says.
	reason, _, err := df.Uint("reason")
	if err != nil {
		return nil, err
	}
	if text, ok := vocab.DataFlowReason.Lookup(reason); ok {
		if err := RequireEmit(obj, ipc.Valid, "reason", text); err != nil {
			return nil, err
		}
	} else {
		s.debug("Unmapped ordinal, field omitted", "key", "reason", "table", vocab.DataFlowReason, "ordinal", reason)
	}
	count, _, err := df.Uint("controller_count")
	if err != nil {
		return nil, err
	}

	ctrls := []any{}
	for i := uint64(0); i < count; i++ {
		c, err := s.controllerFlow(cur)
		if err != nil {
			return nil, err
		}
		ctrls = append(ctrls, c)
	}
	obj.Set("controllerdataflows", ctrls)
	return obj, nil
}
