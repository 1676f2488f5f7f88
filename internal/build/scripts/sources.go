package scripts

// Static C# sources shared by or specific to game categories. They are
// compiled by Unity inside the staged project, never by this service.

const uiManagerScript = `using UnityEngine;
using UnityEngine.UI;
using System.Collections;

public class UIManager : MonoBehaviour
{
    [Header("UI Panels")]
    public GameObject mainMenuPanel;
    public GameObject gamePanel;
    public GameObject pausePanel;

    [Header("UI Elements")]
    public Text gameTitleText;
    public Button startButton;
    public Button resumeButton;
    public Button quitButton;

    private void Start()
    {
        if (gameTitleText != null)
        {
            gameTitleText.text = GameManager.Instance.gameName;
        }

        if (startButton != null)
        {
            startButton.onClick.AddListener(StartGame);
        }

        if (resumeButton != null)
        {
            resumeButton.onClick.AddListener(ResumeGame);
        }

        if (quitButton != null)
        {
            quitButton.onClick.AddListener(QuitGame);
        }

        ShowMainMenu();
    }

    public void ShowMainMenu()
    {
        if (mainMenuPanel != null) mainMenuPanel.SetActive(true);
        if (gamePanel != null) gamePanel.SetActive(false);
        if (pausePanel != null) pausePanel.SetActive(false);
    }

    public void StartGame()
    {
        if (mainMenuPanel != null) mainMenuPanel.SetActive(false);
        if (gamePanel != null) gamePanel.SetActive(true);
        if (pausePanel != null) pausePanel.SetActive(false);
    }

    public void PauseGame()
    {
        if (pausePanel != null) pausePanel.SetActive(true);
    }

    public void ResumeGame()
    {
        if (pausePanel != null) pausePanel.SetActive(false);
    }

    public void QuitGame()
    {
        #if UNITY_EDITOR
        UnityEditor.EditorApplication.isPlaying = false;
        #else
        Application.Quit();
        #endif
    }
}
`

// buildScript is the editor-side entry point invoked in batch mode. It reads
// the output directory from the -buildDir command line argument.
const buildScript = `using UnityEngine;
using UnityEditor;
using System.IO;
using System.Linq;

public class BuildScript
{
    public static void BuildWebGL()
    {
        string buildDir = "";
        string[] args = System.Environment.GetCommandLineArgs();
        for (int i = 0; i < args.Length; i++)
        {
            if (args[i] == "-buildDir" && i + 1 < args.Length)
            {
                buildDir = args[i + 1];
            }
        }

        if (string.IsNullOrEmpty(buildDir))
        {
            Debug.LogError("Build directory not specified!");
            return;
        }

        if (!Directory.Exists(buildDir))
        {
            Directory.CreateDirectory(buildDir);
        }

        BuildPlayerOptions buildPlayerOptions = new BuildPlayerOptions
        {
            scenes = EditorBuildSettings.scenes.Length > 0
                ? EditorBuildSettings.scenes.Select(s => s.path).ToArray()
                : new string[] { "Assets/Scenes/MainScene.unity" },
            targetGroup = BuildTargetGroup.WebGL,
            target = BuildTarget.WebGL,
            locationPathName = buildDir,
            options = BuildOptions.None
        };

        Debug.Log("Starting WebGL build to: " + buildDir);
        BuildPipeline.BuildPlayer(buildPlayerOptions);
        Debug.Log("WebGL build completed");
    }
}
`

const fpsPlayerControllerScript = `using UnityEngine;
using System.Collections;

public class PlayerController : MonoBehaviour
{
    [Header("Player Settings")]
    public float moveSpeed = 5f;
    public float lookSensitivity = 3f;
    public float jumpForce = 5f;

    [Header("Gun Settings")]
    public Transform gunPosition;
    public GameObject gunPrefab;
    public float fireRate = 0.25f;

    private Camera playerCamera;
    private CharacterController characterController;
    private float nextFireTime;
    private float verticalRotation;

    private void Start()
    {
        playerCamera = GetComponentInChildren<Camera>();
        characterController = GetComponent<CharacterController>();
        Cursor.lockState = CursorLockMode.Locked;
    }

    private void Update()
    {
        float mouseX = Input.GetAxis("Mouse X") * lookSensitivity;
        float mouseY = Input.GetAxis("Mouse Y") * lookSensitivity;

        transform.Rotate(0f, mouseX, 0f);
        verticalRotation = Mathf.Clamp(verticalRotation - mouseY, -90f, 90f);
        if (playerCamera != null)
        {
            playerCamera.transform.localRotation = Quaternion.Euler(verticalRotation, 0f, 0f);
        }

        Vector3 move = transform.right * Input.GetAxis("Horizontal")
            + transform.forward * Input.GetAxis("Vertical");
        characterController.SimpleMove(move * moveSpeed);

        if (Input.GetButton("Fire1") && Time.time >= nextFireTime)
        {
            nextFireTime = Time.time + fireRate;
            Fire();
        }
    }

    private void Fire()
    {
        Debug.Log("Player fired");
    }
}
`

const fpsEnemyControllerScript = `using UnityEngine;
using System.Collections;

public class EnemyController : MonoBehaviour
{
    [Header("Enemy Settings")]
    public float moveSpeed = 3f;
    public float attackRange = 2f;
    public float detectionRange = 15f;
    public int health = 100;
    public int attackDamage = 10;

    private Transform player;

    private void Start()
    {
        GameObject playerObject = GameObject.FindGameObjectWithTag("Player");
        if (playerObject != null)
        {
            player = playerObject.transform;
        }
    }

    private void Update()
    {
        if (player == null) return;

        float distance = Vector3.Distance(transform.position, player.position);
        if (distance <= detectionRange && distance > attackRange)
        {
            Vector3 direction = (player.position - transform.position).normalized;
            transform.position += direction * moveSpeed * Time.deltaTime;
            transform.LookAt(new Vector3(player.position.x, transform.position.y, player.position.z));
        }
        else if (distance <= attackRange)
        {
            Attack();
        }
    }

    private void Attack()
    {
        Debug.Log("Enemy attacks for " + attackDamage);
    }

    public void TakeDamage(int amount)
    {
        health -= amount;
        if (health <= 0)
        {
            Destroy(gameObject);
        }
    }
}
`

const adventureControllerScript = `using UnityEngine;
using System.Collections;

public class ThirdPersonController : MonoBehaviour
{
    [Header("Movement Settings")]
    public float moveSpeed = 5f;
    public float turnSpeed = 300f;
    public float jumpForce = 5f;

    [Header("Camera Settings")]
    public Transform cameraTarget;
    public float cameraDistance = 5f;
    public float cameraHeight = 2f;

    private CharacterController controller;
    private Vector3 moveDirection;

    private void Start()
    {
        controller = GetComponent<CharacterController>();
    }

    private void Update()
    {
        float horizontal = Input.GetAxis("Horizontal");
        float vertical = Input.GetAxis("Vertical");

        transform.Rotate(0f, horizontal * turnSpeed * Time.deltaTime, 0f);
        moveDirection = transform.forward * vertical * moveSpeed;
        controller.SimpleMove(moveDirection);
    }
}
`

const adventureInteractionScript = `using UnityEngine;
using System.Collections;

public class InteractionSystem : MonoBehaviour
{
    [Header("Interaction Settings")]
    public float interactionRange = 3f;
    public KeyCode interactionKey = KeyCode.E;
    public LayerMask interactableLayer;

    private void Update()
    {
        if (Input.GetKeyDown(interactionKey))
        {
            TryInteract();
        }
    }

    private void TryInteract()
    {
        Collider[] hits = Physics.OverlapSphere(transform.position, interactionRange, interactableLayer);
        foreach (Collider hit in hits)
        {
            hit.SendMessage("OnInteract", SendMessageOptions.DontRequireReceiver);
            Debug.Log("Interacted with " + hit.name);
            return;
        }
    }
}
`

const puzzleManagerScript = `using UnityEngine;
using UnityEngine.UI;
using System.Collections.Generic;

public class PuzzleManager : MonoBehaviour
{
    [System.Serializable]
    public class PuzzleData
    {
        public string puzzleId;
        public string puzzleName;
        public string description;
        public bool isSolved = false;
    }

    [Header("Puzzles")]
    public List<PuzzleData> puzzles = new List<PuzzleData>();

    [Header("UI")]
    public Text progressText;

    public void MarkSolved(string puzzleId)
    {
        foreach (PuzzleData puzzle in puzzles)
        {
            if (puzzle.puzzleId == puzzleId)
            {
                puzzle.isSolved = true;
                break;
            }
        }
        UpdateProgress();
    }

    private void UpdateProgress()
    {
        int solved = 0;
        foreach (PuzzleData puzzle in puzzles)
        {
            if (puzzle.isSolved) solved++;
        }

        if (progressText != null)
        {
            progressText.text = solved + " / " + puzzles.Count;
        }

        if (solved == puzzles.Count && puzzles.Count > 0)
        {
            Debug.Log("All puzzles solved!");
        }
    }
}
`

const puzzleInteractableScript = `using UnityEngine;

public class InteractablePuzzle : MonoBehaviour
{
    public string puzzleId;
    public PuzzleManager puzzleManager;

    public void OnInteract()
    {
        if (puzzleManager != null)
        {
            puzzleManager.MarkSolved(puzzleId);
            Debug.Log("Solved puzzle " + puzzleId);
        }
    }
}
`

const racingVehicleScript = `using UnityEngine;
using System.Collections;

public class VehicleController : MonoBehaviour
{
    [Header("Vehicle Settings")]
    public float maxSpeed = 20f;
    public float acceleration = 10f;
    public float brakeForce = 15f;
    public float turnSpeed = 5f;

    private Rigidbody body;

    private void Start()
    {
        body = GetComponent<Rigidbody>();
    }

    private void FixedUpdate()
    {
        float throttle = Input.GetAxis("Vertical");
        float steering = Input.GetAxis("Horizontal");

        if (body.velocity.magnitude < maxSpeed)
        {
            body.AddForce(transform.forward * throttle * acceleration, ForceMode.Acceleration);
        }

        transform.Rotate(0f, steering * turnSpeed * Time.fixedDeltaTime * 10f, 0f);

        if (Input.GetKey(KeyCode.Space))
        {
            body.AddForce(-body.velocity.normalized * brakeForce, ForceMode.Acceleration);
        }
    }
}
`

const racingManagerScript = `using UnityEngine;
using UnityEngine.UI;
using System.Collections.Generic;

public class RaceManager : MonoBehaviour
{
    [Header("Race Settings")]
    public int totalLaps = 3;
    public List<Transform> checkpoints = new List<Transform>();

    [Header("UI")]
    public Text lapText;
    public Text timeText;

    private int currentLap = 1;
    private int nextCheckpoint;
    private float raceTime;
    private bool raceActive = true;

    private void Update()
    {
        if (!raceActive) return;

        raceTime += Time.deltaTime;
        if (timeText != null)
        {
            timeText.text = raceTime.ToString("F1") + "s";
        }
    }

    public void PassCheckpoint(int index)
    {
        if (index != nextCheckpoint) return;

        nextCheckpoint++;
        if (nextCheckpoint >= checkpoints.Count)
        {
            nextCheckpoint = 0;
            currentLap++;
            if (lapText != null)
            {
                lapText.text = "Lap " + currentLap + " / " + totalLaps;
            }

            if (currentLap > totalLaps)
            {
                raceActive = false;
                Debug.Log("Race finished in " + raceTime.ToString("F1") + "s");
            }
        }
    }
}
`

const platformerControllerScript = `using UnityEngine;
using System.Collections;

public class PlatformerController : MonoBehaviour
{
    [Header("Movement Settings")]
    public float moveSpeed = 5f;
    public float jumpForce = 12f;
    public float groundCheckDistance = 0.2f;
    public LayerMask groundLayer;

    private Rigidbody2D body;
    private bool grounded;

    private void Start()
    {
        body = GetComponent<Rigidbody2D>();
    }

    private void Update()
    {
        grounded = Physics2D.Raycast(transform.position, Vector2.down, groundCheckDistance, groundLayer);

        float horizontal = Input.GetAxis("Horizontal");
        body.velocity = new Vector2(horizontal * moveSpeed, body.velocity.y);

        if (grounded && Input.GetButtonDown("Jump"))
        {
            body.velocity = new Vector2(body.velocity.x, jumpForce);
        }
    }
}
`

const platformerCollectibleScript = `using UnityEngine;

public class Collectible : MonoBehaviour
{
    public int value = 1;
    public float rotationSpeed = 90f;

    private void Update()
    {
        transform.Rotate(0f, rotationSpeed * Time.deltaTime, 0f);
    }

    private void OnTriggerEnter2D(Collider2D other)
    {
        if (other.CompareTag("Player"))
        {
            Debug.Log("Collected " + value);
            Destroy(gameObject);
        }
    }
}
`

const genericControllerScript = `using UnityEngine;
using System.Collections;

public class GenericController : MonoBehaviour
{
    [Header("Movement Settings")]
    public float moveSpeed = 5f;

    private void Update()
    {
        Vector3 move = new Vector3(Input.GetAxis("Horizontal"), 0f, Input.GetAxis("Vertical"));
        transform.position += move * moveSpeed * Time.deltaTime;
    }
}
`
