package renderer

import (
	"image/color"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row  int   // Image row, counted from the top
	Seed int64 // Seed of the row's private random generator
}

// RowResult contains the pixels of one finished row
type RowResult struct {
	Row    int
	Pixels []color.RGBA
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	completed   atomic.Int64
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
	pool        *WorkerPool
}

// NewWorkerPool creates a worker pool for an image with the given number of rows.
// Every worker shares the same read-only raytracer.
func NewWorkerPool(raytracer *Raytracer, rows, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),   // Buffer for every row
		resultQueue: make(chan RowResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			pool:        wp,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for the workers and closes the results
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row, in completion order
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Completed returns how many rows have finished so far
func (wp *WorkerPool) Completed() int {
	return int(wp.completed.Load())
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// The row's generator depends only on its seed, never on the worker
		random := rand.New(rand.NewSource(task.Seed))
		pixels := w.raytracer.RenderRow(task.Row, random)

		w.pool.completed.Add(1)
		w.resultQueue <- RowResult{Row: task.Row, Pixels: pixels}
	}
}
