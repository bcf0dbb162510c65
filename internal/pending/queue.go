// Package pending collects GL resources whose initialization is deferred
// and runs them in one sweep once a context is current.
package pending

import (
	"strconv"

	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"gvr-gl/internal/glctx"
	"gvr-gl/internal/logging"
	"gvr-gl/internal/profiling"
)

// Task is a GL resource with deferred initialization.
type Task interface {
	Pending() bool
	RunPendingGL(ctx glctx.Context)
}

// jsonWriter is implemented by tasks that can describe themselves in a dump.
type jsonWriter interface {
	WriteJSON(json *jwriter.ObjectState)
}

// Queue holds tasks in insertion order. Like the resources it holds, it
// belongs to the render thread and does no locking.
type Queue struct {
	tasks   []Task
	members *swiss.Map[Task, struct{}]
}

func NewQueue() *Queue {
	return &Queue{members: swiss.NewMap[Task, struct{}](16)}
}

// Add queues task. Adding a task that is already queued is a no-op.
func (q *Queue) Add(task Task) {
	if q.members.Has(task) {
		return
	}
	q.members.Put(task, struct{}{})
	q.tasks = append(q.tasks, task)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// RunAll runs every queued task that is still pending, then empties the
// queue. It returns the number of tasks that ran.
func (q *Queue) RunAll(ctx glctx.Context) int {
	if len(q.tasks) == 0 {
		return 0
	}
	defer profiling.Track("pending.RunAll")()

	ran := 0
	for _, task := range q.tasks {
		if !task.Pending() {
			continue
		}
		task.RunPendingGL(ctx)
		ran++
	}

	logging.Logger().Debug("pending tasks run", "queued", len(q.tasks), "ran", ran)

	clear(q.tasks)
	q.tasks = q.tasks[:0]
	q.members.Clear()
	return ran
}

// PrintDetailedMap writes the queued tasks as a JSON object keyed by queue
// position.
func (q *Queue) PrintDetailedMap(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	objState.Name("Count").Int(len(q.tasks))
	tasksObj := objState.Name("Tasks").Object()
	defer tasksObj.End()

	for i, task := range q.tasks {
		taskObj := tasksObj.Name(strconv.Itoa(i)).Object()
		if w, ok := task.(jsonWriter); ok {
			w.WriteJSON(&taskObj)
		} else {
			taskObj.Name("Pending").Bool(task.Pending())
		}
		taskObj.End()
	}
}
