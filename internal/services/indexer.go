package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/insight-compass/internal/repositories"
)

// Indexer embeds analyzed note texts and upserts them into the vector index
// in the background. Analysis responses never wait on indexing; a poller
// picks up anything that was missed.
type Indexer interface {
	Start(ctx context.Context)
	Stop()
	EnqueueAnalysis(analysisID uuid.UUID)
}

type indexer struct {
	analysisRepo  repositories.AnalysisRepository
	geminiService GeminiService
	qdrantService QdrantService
	jobQueue      chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewIndexer(
	analysisRepo repositories.AnalysisRepository,
	geminiService GeminiService,
	qdrantService QdrantService,
	concurrency int,
) Indexer {
	return &indexer{
		analysisRepo:  analysisRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Indexer.
func (w *indexer) Start(ctx context.Context) {
	log.Printf("🚀 Starting indexer with %d workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollUnindexed(ctx)

	log.Println("✅ Indexer started successfully")
}

// Stop implements Indexer.
func (w *indexer) Stop() {
	log.Println("🛑 Stopping indexer...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Indexer stopped")
}

// EnqueueAnalysis implements Indexer.
func (w *indexer) EnqueueAnalysis(analysisID uuid.UUID) {
	select {
	case w.jobQueue <- analysisID:
	case <-w.stopChan:
		log.Printf("⚠️  Indexer stopped, cannot enqueue analysis %s\n", analysisID)
	default:
		// Queue full: the poller will pick this analysis up later.
		log.Printf("⚠️  Indexer queue full, analysis %s left for the poller\n", analysisID)
	}
}

func (w *indexer) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Indexer worker #%d stopped\n", workerID)
			return
		case analysisID := <-w.jobQueue:
			if err := w.indexAnalysis(ctx, analysisID); err != nil {
				log.Printf("❌ Indexer worker #%d failed to index analysis %s: %v\n", workerID, analysisID, err)
			}
		}
	}
}

func (w *indexer) indexAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	analysis, err := w.analysisRepo.FindByID(analysisID)
	if err != nil {
		return err
	}

	embedding, err := w.geminiService.GenerateEmbedding(ctx, analysis.InputText)
	if err != nil {
		return err
	}

	if err := w.qdrantService.UpsertAnalysis(ctx, analysis.ID, analysis.InputText, embedding); err != nil {
		return err
	}

	return w.analysisRepo.MarkIndexed(analysis.ID)
}

func (w *indexer) pollUnindexed(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Unindexed analyses poller stopped")
			return
		case <-ticker.C:
			pending, err := w.analysisRepo.FindUnindexed(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch unindexed analyses: %v\n", err)
				continue
			}

			for _, analysis := range pending {
				w.EnqueueAnalysis(analysis.ID)
			}
		}
	}
}
