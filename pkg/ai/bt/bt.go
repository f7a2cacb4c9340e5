package bt

type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

type Node interface {
	Tick(bb Blackboard) Status
}

type Blackboard interface{}

// Selector 依次执行子节点，直到有一个成功
type Selector struct {
	Children []Node
}

func (s *Selector) Tick(bb Blackboard) Status {
	for _, child := range s.Children {
		if child.Tick(bb) == StatusSuccess {
			return StatusSuccess
		}
	}
	return StatusFailure
}

// Sequence 依次执行子节点，直到有一个失败
type Sequence struct {
	Children []Node
}

func (s *Sequence) Tick(bb Blackboard) Status {
	for _, child := range s.Children {
		if child.Tick(bb) == StatusFailure {
			return StatusFailure
		}
	}
	return StatusSuccess
}

type ConditionFunc func(bb Blackboard) bool

type Condition struct {
	Check ConditionFunc
}

func (c *Condition) Tick(bb Blackboard) Status {
	if c.Check == nil {
		return StatusFailure
	}
	if c.Check(bb) {
		return StatusSuccess
	}
	return StatusFailure
}

type ActionFunc func(bb Blackboard) Status

type Action struct {
	Do ActionFunc
}

func (a *Action) Tick(bb Blackboard) Status {
	if a.Do == nil {
		return StatusFailure
	}
	return a.Do(bb)
}
