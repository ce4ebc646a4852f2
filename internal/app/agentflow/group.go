package agentflow

import (
	"context"
	"sync"
)

// Task is one unit of fan-out work producing text.
type Task struct {
	Name string
	Run  func(ctx context.Context) (string, error)
}

// runGroup executes tasks on a bounded pool of workers and joins on all of
// them: no early return on first completion, no partial results on first
// failure. Results come back in task order; the first error in task order
// is reported once every task has finished.
func runGroup(ctx context.Context, workers int, tasks []Task) ([]string, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	jobs := make(chan int)
	results := make([]string, len(tasks))
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = tasks[i].Run(ctx)
			}
		}()
	}

	for i := range tasks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
